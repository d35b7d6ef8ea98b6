package gitsync

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func TestEchoCommand(t *testing.T) {
	buf := captureOutput(t)

	echoCommand("git", []string{"add", "."})

	out := buf.String()
	if !strings.Contains(out, "git add .") {
		t.Errorf("echo = %q, want the command line", out)
	}
	// The command is rendered in goldenrod within a dim base color.
	if !strings.Contains(out, "\x1b[38;2;218;165;32m") {
		t.Errorf("echo = %q, want goldenrod escape", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m\n") {
		t.Errorf("echo = %q, want trailing reset and newline", out)
	}
}

func TestRunCommandMissingBinary(t *testing.T) {
	captureOutput(t)

	err := runCommand("definitely-not-a-real-binary-xyz")
	if !errors.Is(err, serrors.ErrCommandFailed) {
		t.Errorf("runCommand with missing binary = %v, want ErrCommandFailed", err)
	}
}
