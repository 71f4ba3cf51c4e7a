package tabular

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tabular/ansi"
)

// cell holds the rendered, aligned lines for one (row, column)
// intersection. It is exclusively owned by the generateRow call that
// created it and discarded when the row string is emitted.
type cell struct {
	lines []string
	width int
}

// generateCell stringifies one value, expands tabs, wraps it to the column
// width (data cells also honor the column's line cap), and aligns every
// line with the fill string.
//
// Styled cells keep terminal state contained: the style sequences still
// active at the end of a line are replayed at the start of the next one,
// and every line that carries or inherits style is closed with an SGR reset
// before any padding, so color never bleeds into fill or adjacent cells.
func (t *TableCreator) generateCell(data any, isHeader bool, col Column, fill string) cell {
	text := strings.ReplaceAll(fmt.Sprint(data), "\t", strings.Repeat(" ", t.tabWidth))

	maxLines := col.maxDataLines
	if isHeader {
		// Headers are never truncated.
		maxLines = unboundedLines
	}
	lines := wrapLines(text, col.width, maxLines)
	if len(lines) == 0 {
		lines = []string{""}
	}

	align := col.dataHorizAlign
	if isHeader {
		align = col.headerHorizAlign
	}

	out := make([]string, len(lines))
	carried := "" // style sequences active at the end of previous lines
	for i, line := range lines {
		content := line
		styled := carried != ""
		if styled {
			content = carried + content
		}
		for _, seq := range ansi.Styles(line) {
			styled = true
			if seq == ansi.Reset {
				carried = ""
			} else {
				carried += seq
			}
		}
		if styled && !strings.HasSuffix(content, ansi.Reset) {
			content += ansi.Reset
		}
		out[i] = alignLine(content, col.width, fill, align)
	}
	return cell{lines: out, width: col.width}
}

func alignLine(text string, width int, fill string, align HorizontalAlignment) string {
	switch align {
	case AlignRight:
		return ansi.AlignRight(text, width, fill)
	case AlignCenter:
		return ansi.AlignCenter(text, width, fill)
	default:
		return ansi.AlignLeft(text, width, fill)
	}
}
