package ansi

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Unprintable is the width reported for characters that have no defined
// display width, such as control characters and bare newlines.
const Unprintable = -1

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

const esc = '\x1b'

// styleRE matches a single SGR style sequence (CSI ... m)
var styleRE = regexp.MustCompile("\x1b\\[[^m]*m")

// StyleSpans returns every style sequence in s, keyed by the byte offset at
// which it starts. Callers walking a string byte-by-byte skip a sequence by
// advancing len(seq) bytes. Returns nil when s contains no sequences.
func StyleSpans(s string) map[int]string {
	if !strings.ContainsRune(s, esc) {
		return nil
	}
	spans := make(map[int]string)
	for _, loc := range styleRE.FindAllStringIndex(s, -1) {
		spans[loc[0]] = s[loc[0]:loc[1]]
	}
	return spans
}

// Styles returns every style sequence in s in order of appearance.
func Styles(s string) []string {
	if !strings.ContainsRune(s, esc) {
		return nil
	}
	return styleRE.FindAllString(s, -1)
}

// Strip removes all style sequences from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	return styleRE.ReplaceAllLiteralString(s, "")
}

// RuneWidth returns the number of terminal columns r occupies:
// 0 for zero-width marks, 1 for ordinary characters, 2 for wide characters,
// Unprintable for control characters.
func RuneWidth(r rune) int {
	// C0 and C1 control ranges
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return Unprintable
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s, ignoring style sequences.
// If any character outside a style sequence is unprintable, the whole
// string reports Unprintable.
func StringWidth(s string) int {
	spans := StyleSpans(s)
	width := 0
	i := 0
	for i < len(s) {
		if seq, ok := spans[i]; ok {
			i += len(seq)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := RuneWidth(r)
		if w == Unprintable {
			return Unprintable
		}
		width += w
		i += size
	}
	return width
}

// VisibleWidth is StringWidth with unprintable characters counted as zero
// columns instead of poisoning the result. Layout code uses it for cell
// content, which may carry stray control characters through to the terminal;
// StringWidth's sentinel stays for callers that must reject such input.
func VisibleWidth(s string) int {
	spans := StyleSpans(s)
	width := 0
	i := 0
	for i < len(s) {
		if seq, ok := spans[i]; ok {
			i += len(seq)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if w := RuneWidth(r); w > 0 {
			width += w
		}
		i += size
	}
	return width
}

// NextCluster returns the first grapheme cluster of s and its display
// width. Iterating clusters instead of runes keeps combining marks attached
// to their base character when text is broken mid-word. Control characters
// clamp to zero width so callers can pass them through without affecting
// layout.
func NextCluster(s string) (string, int) {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	width := 0
	for _, r := range cluster {
		if w := RuneWidth(r); w > 0 {
			width += w
		}
	}
	return cluster, width
}
