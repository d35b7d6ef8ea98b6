package console

import (
	"strings"
	"testing"
)

func TestSprintPlainText(t *testing.T) {
	// Text without tag syntax comes back unchanged except for the
	// enclosing base escape and trailing reset.
	got := Sprint("#fff", "hello world")
	want := "\x1b[38;2;255;255;255mhello world\x1b[0m"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprintTaggedSpan(t *testing.T) {
	got := Sprint("#fff", "a [b](#f00) c")
	want := "\x1b[38;2;255;255;255m" +
		"a " +
		"\x1b[38;2;255;0;0m" + "b" + "\x1b[38;2;255;255;255m" +
		" c" +
		"\x1b[0m"
	if got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestSprintUnresolvedBaseTag(t *testing.T) {
	got := Sprint("no-such-color", "hi")
	want := "\x1b[38;2;128;128;128mhi\x1b[0m"
	if got != want {
		t.Errorf("unresolved base tag = %q, want gray fallback %q", got, want)
	}
}

func TestSprintUnresolvedSpanTag(t *testing.T) {
	got := Sprint("#fff", "see [docs](no-such-color) here")
	want := "\x1b[38;2;255;255;255msee [docs](no-such-color) here\x1b[0m"
	if got != want {
		t.Errorf("unresolved span = %q, want literal %q", got, want)
	}
}

func TestSprintWhitespaceHeldAside(t *testing.T) {
	got := Sprint("#fff", "  hi\t ")
	want := "  \x1b[38;2;255;255;255mhi\t \x1b[0m"
	if got != want {
		t.Errorf("whitespace = %q, want %q", got, want)
	}
}

func TestSprintMultilineKeepsLeadingWhitespace(t *testing.T) {
	got := Sprint("#fff", "  a\nb")
	want := "\x1b[38;2;255;255;255m  a\nb\x1b[0m"
	if got != want {
		t.Errorf("multiline = %q, want %q", got, want)
	}
}

func TestSprintEmpty(t *testing.T) {
	if got := Sprint("#fff", ""); got != "" {
		t.Errorf("empty input = %q, want empty output", got)
	}
	if got := Sprint("#fff", "   "); got != "" {
		t.Errorf("whitespace-only input = %q, want empty output", got)
	}
}

func TestSprintNumberSpan(t *testing.T) {
	got := Sprint("#fff", "[1234567](number) files")
	want := "\x1b[38;2;255;255;255m" +
		"\x1b[38;2;85;111;237m" + "1,234,567" + "\x1b[38;2;255;255;255m" +
		" files" +
		"\x1b[0m"
	if got != want {
		t.Errorf("number span = %q, want %q", got, want)
	}
}

func TestSprintfAndSprintln(t *testing.T) {
	if got := Sprintf("#fff", "n=[%d](number)", 1000); !strings.Contains(got, "1,000") {
		t.Errorf("Sprintf = %q, want grouped number", got)
	}
	if got := Sprintln("#fff", "hi"); !strings.HasSuffix(got, "\x1b[0m\n") {
		t.Errorf("Sprintln = %q, want trailing reset then newline", got)
	}
}

func TestSprintMalformedSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"unmatched open bracket",
			"text [open",
			"\x1b[38;2;255;255;255mtext [open\x1b[0m",
		},
		{
			"bracket without tag",
			"[x] rest",
			"\x1b[38;2;255;255;255m[x] rest\x1b[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint("#fff", tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
