package console

import (
	"fmt"
	"os"
	"strings"
)

// Sprint renders text under baseTag and returns the ANSI-escaped string.
// The base color applies to the whole message; each [text](tag) span is
// rewritten by its semantic rule (if any), colored with its tag's color,
// and followed by a return to the base color. Spans whose tag does not
// resolve are emitted literally, uncolored. The result always ends with
// a full attribute reset.
func Sprint(baseTag, text string) string {
	base, ok := Resolve(baseTag)
	if !ok {
		base = gray()
	}

	// Indentation is never colorized: hold horizontal whitespace aside
	// and re-append it outside the colored span. Leading whitespace is
	// kept in place when the message spans multiple lines.
	trimmed := strings.TrimRight(text, " \t")
	trailing := text[len(trimmed):]
	leading := ""
	if !strings.Contains(trimmed, "\n") {
		start := strings.TrimLeft(trimmed, " \t")
		leading = trimmed[:len(trimmed)-len(start)]
		trimmed = start
	}
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(leading)
	b.WriteString(base.ANSI())
	for _, frag := range parseText(trimmed) {
		if frag.Tag == "" {
			b.WriteString(frag.Text)
			continue
		}
		if rgb, ok := Resolve(frag.Tag); ok {
			b.WriteString(rgb.ANSI())
			b.WriteString(formatText(frag.Text, frag.Tag))
			b.WriteString(base.ANSI())
		} else {
			fmt.Fprintf(&b, "[%s](%s)", frag.Text, frag.Tag)
		}
	}
	b.WriteString(trailing)
	b.WriteString(ansiReset)
	return b.String()
}

// Sprintf renders a formatted message under baseTag.
func Sprintf(baseTag, format string, args ...any) string {
	return Sprint(baseTag, fmt.Sprintf(format, args...))
}

// Sprintln is Sprint with a trailing newline.
func Sprintln(baseTag, text string) string {
	return Sprint(baseTag, text) + "\n"
}

// Print renders a formatted message under baseTag to standard output.
func Print(baseTag, format string, args ...any) {
	fmt.Fprint(os.Stdout, Sprintf(baseTag, format, args...))
}

// Println renders a formatted message under baseTag to standard output,
// followed by a newline.
func Println(baseTag, format string, args ...any) {
	fmt.Fprintln(os.Stdout, Sprintf(baseTag, format, args...))
}
