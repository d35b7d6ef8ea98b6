package console

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color with one byte per channel.
type RGB struct {
	R, G, B uint8
}

// gray is the fallback used when a base color tag cannot be resolved.
func gray() RGB {
	return RGB{R: 128, G: 128, B: 128}
}

// ANSI returns the SGR sequence that sets the 24-bit foreground color.
func (c RGB) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ansiReset restores all terminal attributes.
const ansiReset = "\x1b[0m"

// Resolve maps a tag string to a concrete color. Resolution order:
//
//  1. Registry aliases (a single indirection; the registered value is
//     not looked up against the registry again).
//  2. Named HTML colors, case-insensitive.
//  3. Semantic constants (filename, filepath, number, digits).
//  4. Literal hex: #RGB, #RRGGBB, RGB, or RRGGBB.
//
// The second return value is false when none of the steps apply. Callers
// own the fallback policy; Resolve never substitutes a default.
func Resolve(tag string) (RGB, bool) {
	if v, ok := defaultRegistry().Lookup(tag); ok {
		tag = v
	}
	lower := strings.ToLower(tag)
	if hex, ok := htmlNamedColors[lower]; ok {
		return parseHex(hex)
	}
	if hex, ok := semanticColors[lower]; ok {
		return parseHex(hex)
	}
	return parseHex(lower)
}

// semanticColors are the fixed colors for semantic tags. They sit after
// the registry in the resolution chain, so aliases can shadow them.
var semanticColors = map[string]string{
	"filename": "#f7cd43",
	"filepath": "#f7cd43",
	"number":   "#556fed",
	"digits":   "#556fed",
}

// parseHex parses a hex color in #RGB, #RRGGBB, RGB, or RRGGBB form.
// In the 3-digit form each digit is doubled (f -> ff). Any wrong length
// or non-hex character fails resolution.
func parseHex(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		r, okR := hexChannel(hex[0:1] + hex[0:1])
		g, okG := hexChannel(hex[1:2] + hex[1:2])
		b, okB := hexChannel(hex[2:3] + hex[2:3])
		if !okR || !okG || !okB {
			return RGB{}, false
		}
		return RGB{R: r, G: g, B: b}, true
	case 6:
		r, okR := hexChannel(hex[0:2])
		g, okG := hexChannel(hex[2:4])
		b, okB := hexChannel(hex[4:6])
		if !okR || !okG || !okB {
			return RGB{}, false
		}
		return RGB{R: r, G: g, B: b}, true
	default:
		return RGB{}, false
	}
}

func hexChannel(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
