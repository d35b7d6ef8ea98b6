package gitsync

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/raiment-studios/sea-git-sync/internal/console"
	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

// stdout receives echoed commands and subprocess output. Quiet mode
// replaces it so a spinner can own the terminal.
var stdout io.Writer = os.Stdout

// SetOutput redirects command echoes and subprocess output. Pass
// io.Discard for quiet mode; stderr is never redirected.
func SetOutput(w io.Writer) {
	stdout = w
}

// status prints a progress line through the console engine, honoring
// the configured output writer.
func status(baseTag, format string, args ...any) {
	fmt.Fprint(stdout, console.Sprintln(baseTag, fmt.Sprintf(format, args...)))
}

// echoCommand prints the command line about to run, dimmed, with the
// command itself in accent color.
func echoCommand(name string, args []string) {
	status("555", "> [%s %s](goldenrod)", name, strings.Join(args, " "))
}

// runCommand runs an external command in the current directory, echoing
// it first and passing its output through.
func runCommand(name string, args ...string) error {
	return runCommandInDir(".", name, args...)
}

func runCommandInDir(dir, name string, args ...string) error {
	echoCommand(name, args)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%w: %s exited with code %d", serrors.ErrCommandFailed, name, exit.ExitCode())
		}
		return fmt.Errorf("%w: executing %s: %v", serrors.ErrCommandFailed, name, err)
	}
	return nil
}

// git runs a git subcommand. A `git commit` that exits with code 1 is
// treated as "nothing to commit" rather than a failure.
func git(args ...string) error {
	echoCommand("git", args)

	cmd := exec.Command("git", args...)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}

	exit, ok := err.(*exec.ExitError)
	if !ok {
		return fmt.Errorf("%w: %v", serrors.ErrGitNotFound, err)
	}
	if len(args) > 0 && args[0] == "commit" && exit.ExitCode() == 1 {
		fmt.Fprintln(stdout, "No changes to commit")
		return nil
	}
	return fmt.Errorf("%w: git %s exited with code %d", serrors.ErrGitCommandFailed, args[0], exit.ExitCode())
}
