package console

import (
	"fmt"
	"strings"
	"testing"
)

// reconstruct concatenates fragment texts, reinserting the bracket
// syntax for tagged fragments, which must reproduce the parser input.
func reconstruct(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		if f.Tag == "" {
			b.WriteString(f.Text)
		} else {
			fmt.Fprintf(&b, "[%s](%s)", f.Text, f.Tag)
		}
	}
	return b.String()
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Fragment
	}{
		{
			"plain text",
			"hello world",
			[]Fragment{{Text: "hello world"}},
		},
		{
			"single tagged span",
			"[hello](red)",
			[]Fragment{{Text: "hello", Tag: "red"}},
		},
		{
			"text around a span",
			"a [b](c) d",
			[]Fragment{{Text: "a "}, {Text: "b", Tag: "c"}, {Text: " d"}},
		},
		{
			"adjacent spans",
			"[a](x)[b](y)",
			[]Fragment{{Text: "a", Tag: "x"}, {Text: "b", Tag: "y"}},
		},
		{
			"nested brackets in text",
			"[a[b]c](key)",
			[]Fragment{{Text: "a[b]c", Tag: "key"}},
		},
		{
			"unmatched open bracket",
			"text [open",
			[]Fragment{{Text: "text "}, {Text: "[open"}},
		},
		{
			"brackets without a tag",
			"[x] rest",
			[]Fragment{{Text: "["}, {Text: "x] rest"}},
		},
		{
			"unmatched close paren",
			"[x](tag rest",
			[]Fragment{{Text: "["}, {Text: "x](tag rest"}},
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"lone close bracket",
			"a]b",
			[]Fragment{{Text: "a]b"}},
		},
		{
			"rescan finds later span",
			"[x] [y](blue)",
			[]Fragment{{Text: "["}, {Text: "x] "}, {Text: "y", Tag: "blue"}},
		},
		{
			"empty tag",
			"[x]()",
			[]Fragment{{Text: "x", Tag: ""}},
		},
		{
			"unicode text and tag",
			"wave [🌊](#39C) done",
			[]Fragment{{Text: "wave "}, {Text: "🌊", Tag: "#39C"}, {Text: " done"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseText(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseText(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseText(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTextRoundTrip(t *testing.T) {
	// None of these inputs contain resolvable tags, so reconstruction
	// must reproduce the input byte for byte.
	inputs := []string{
		"plain text with no syntax",
		"text [open",
		"[x] rest",
		"a ] stray [ close",
		"[a[b]c](nosuchtag)",
		"[x](tag rest",
		"deep [a[b[c]d]e](nosuchtag) tail",
		"][",
	}
	for _, input := range inputs {
		if got := reconstruct(parseText(input)); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}
