package console

// Fragment is one parsed unit of input: plain text when Tag is empty,
// otherwise a tagged span from a [text](tag) pattern.
type Fragment struct {
	Text string
	Tag  string
}

// parseText scans s for [text](tag) spans and returns the ordered
// fragments. Brackets nest inside the text portion: [a[b]c](tag) yields
// the text "a[b]c". Malformed syntax degrades to literal text:
//
//   - a '[' with no matching ']' swallows the rest of the input as one
//     plain fragment;
//   - a matched [text] that is not immediately followed by a complete
//     (tag) emits "[" as a one-character plain fragment and rescans
//     from the character after the '['.
func parseText(s string) []Fragment {
	var fragments []Fragment
	chars := []rune(s)
	length := len(chars)
	pos := 0

	for pos < length {
		open := indexRune(chars, pos, '[')
		if open < 0 {
			break
		}
		if open > pos {
			fragments = append(fragments, Fragment{Text: string(chars[pos:open])})
		}

		// Find the ']' that closes this '[', counting nested brackets.
		depth := 1
		closeBracket := -1
		for i := open + 1; i < length; i++ {
			switch chars[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					closeBracket = i
				}
			}
			if closeBracket >= 0 {
				break
			}
		}

		if closeBracket < 0 {
			// Unmatched '['; everything from it onward is literal.
			pos = open
			break
		}

		if closeBracket+1 < length && chars[closeBracket+1] == '(' {
			tagStart := closeBracket + 2
			if closeParen := indexRune(chars, tagStart, ')'); closeParen >= 0 {
				fragments = append(fragments, Fragment{
					Text: string(chars[open+1 : closeBracket]),
					Tag:  string(chars[tagStart:closeParen]),
				})
				pos = closeParen + 1
				continue
			}
		}

		// [text] without a complete (tag): the '[' is literal, and the
		// text after it is rescanned from scratch.
		fragments = append(fragments, Fragment{Text: "["})
		pos = open + 1
	}

	if pos < length {
		fragments = append(fragments, Fragment{Text: string(chars[pos:])})
	}
	if len(fragments) == 0 && s != "" {
		fragments = append(fragments, Fragment{Text: s})
	}
	return fragments
}

func indexRune(chars []rune, from int, r rune) int {
	for i := from; i < len(chars); i++ {
		if chars[i] == r {
			return i
		}
	}
	return -1
}
