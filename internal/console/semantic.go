package console

import (
	"os"
	"strconv"
	"strings"
)

// semanticTag classifies tags that rewrite the text itself, not just
// its color.
type semanticTag int

const (
	semanticNone semanticTag = iota
	semanticNumber
	semanticFilename
)

func classifyTag(tag string) semanticTag {
	switch tag {
	case "number":
		return semanticNumber
	case "filename", "filepath":
		return semanticFilename
	default:
		return semanticNone
	}
}

// pathPrefixHex colors the "."/"~" stand-in when a path is abbreviated.
const pathPrefixHex = "#ed552b"

// formatText applies a semantic rewrite to text based on its tag.
// Unknown tags and any lookup or parse failures return text unchanged.
func formatText(text, tag string) string {
	switch classifyTag(tag) {
	case semanticNumber:
		return groupDigits(text)
	case semanticFilename:
		return abbreviatePath(text, tag)
	default:
		return text
	}
}

// groupDigits re-renders a base-10 integer with comma separators every
// three digits. Non-integer input (including anything with a fractional
// part) passes through unchanged.
func groupDigits(text string) string {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return text
	}
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return sign + string(grouped)
}

// abbreviatePath replaces a leading cwd with "." or a leading $HOME
// with "~", coloring the stand-in with the path-prefix accent before
// switching back to the tag's own color. Missing cwd or HOME simply
// skips the substitution.
func abbreviatePath(text, tag string) string {
	tagColor, ok := Resolve(tag)
	if !ok {
		return text
	}
	prefixColor, _ := parseHex(pathPrefixHex)

	if cwd, err := os.Getwd(); err == nil && cwd != "" {
		if text != cwd && strings.HasPrefix(text, cwd) {
			return prefixColor.ANSI() + "." + tagColor.ANSI() + text[len(cwd):]
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		if strings.HasPrefix(text, home) {
			return prefixColor.ANSI() + "~" + tagColor.ANSI() + text[len(home):]
		}
	}
	return text
}
