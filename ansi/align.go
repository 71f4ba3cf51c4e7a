package ansi

import "strings"

// fillRepeat returns fill repeated to cover gap display columns. The fill
// string is one visible character but may carry style sequences and may be
// wide, in which case the repeat count floors to what fits.
func fillRepeat(fill string, gap int) string {
	fw := StringWidth(fill)
	if fw < 1 {
		fw = 1
	}
	return strings.Repeat(fill, gap/fw)
}

// AlignLeft pads a single already-wrapped line on the right to width
// display columns. Text is measured with VisibleWidth, so embedded control
// characters occupy no columns; text at or beyond width is returned
// unchanged.
func AlignLeft(text string, width int, fill string) string {
	tw := VisibleWidth(text)
	if tw >= width {
		return text
	}
	return text + fillRepeat(fill, width-tw)
}

// AlignRight pads a single already-wrapped line on the left to width
// display columns.
func AlignRight(text string, width int, fill string) string {
	tw := VisibleWidth(text)
	if tw >= width {
		return text
	}
	return fillRepeat(fill, width-tw) + text
}

// AlignCenter splits padding between both sides; an odd leftover column
// goes to the right.
func AlignCenter(text string, width int, fill string) string {
	tw := VisibleWidth(text)
	if tw >= width {
		return text
	}
	gap := width - tw
	left := gap / 2
	return fillRepeat(fill, left) + text + fillRepeat(fill, gap-left)
}
