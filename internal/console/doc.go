// Package console renders colorized CLI output from a markdown-like
// inline syntax.
//
// Messages may contain [text](tag) spans, where the tag names a color or
// a semantic behavior:
//
//	console.Println("#39C", "Pushed [%d](number) commits to [%s](key)", n, remote)
//
// # Tags
//
// A tag resolves, in order, through:
//
//   - the process-wide alias registry ("error", "key", "success", ...),
//     extendable at runtime with RegisterColor
//   - the standard HTML named colors ("goldenrod", "rebeccapurple", ...)
//   - semantic constants ("filename", "filepath", "number", "digits")
//   - literal hex, with or without '#', 3 or 6 digits ("#f00", "4CF")
//
// Semantic tags also rewrite the text: "number" adds thousands
// separators, "filename" and "filepath" abbreviate the current working
// directory to "." and the home directory to "~".
//
// # Degradation
//
// Nothing here fails loudly. A span whose tag resolves to no color is
// printed literally as [text](tag); a base tag that does not resolve
// falls back to neutral gray; malformed bracket syntax is printed
// verbatim. Output assumes a terminal that understands 24-bit SGR
// color sequences.
package console
