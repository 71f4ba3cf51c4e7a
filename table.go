package tabular

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tabular/ansi"
)

const defaultTabWidth = 4

// TableCreator is the layout engine for one table. It holds no per-row
// state, so a single instance may be shared across goroutines rendering
// concurrently.
type TableCreator struct {
	cols     []Column
	tabWidth int
}

// TableOption configures a TableCreator during construction
type TableOption func(*TableCreator)

// WithTabWidth sets how many spaces replace each horizontal tab before any
// width computation. Defaults to 4.
func WithTabWidth(width int) TableOption {
	return func(t *TableCreator) { t.tabWidth = width }
}

// NewTableCreator builds a table layout engine over an ordered, non-empty
// column list. The column slice is copied; the creator is immutable.
func NewTableCreator(cols []Column, opts ...TableOption) (*TableCreator, error) {
	if len(cols) == 0 {
		return nil, errors.New("table must have at least one column")
	}
	t := &TableCreator{
		cols:     append([]Column(nil), cols...),
		tabWidth: defaultTabWidth,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.tabWidth < 0 {
		return nil, errors.New("tab width cannot be negative")
	}
	return t, nil
}

// RowOptions are the per-call formatting options of a row render.
//
// FillChar occupies unused cell space and must be exactly one printable
// character once style sequences are stripped; it may carry style (give it
// the data's background color). An empty FillChar means a space. PreLine,
// InterCell and PostLine decorate each rendered line and must not contain
// unprintable characters.
type RowOptions struct {
	FillChar  string
	PreLine   string
	InterCell string
	PostLine  string
}

// DefaultRowOptions returns space fill and a two-space cell gap.
func DefaultRowOptions() RowOptions {
	return RowOptions{FillChar: " ", InterCell: "  "}
}

// HeaderOptions extends RowOptions with an optional divider: a single
// visible character repeated below the header block to its full rendered
// width. Empty means no divider.
type HeaderOptions struct {
	RowOptions
	Divider string
}

// DefaultHeaderOptions returns DefaultRowOptions and no divider.
func DefaultHeaderOptions() HeaderOptions {
	return HeaderOptions{RowOptions: DefaultRowOptions()}
}

// GenerateHeaderRow renders the header block: every column's header text
// wrapped (without a line cap), aligned, and joined line by line, plus the
// divider line when one is configured.
func (t *TableCreator) GenerateHeaderRow(opts HeaderOptions) (string, error) {
	if opts.Divider != "" {
		if err := validateFill("divider character", opts.Divider); err != nil {
			return "", err
		}
	}

	data := make([]any, len(t.cols))
	for i, col := range t.cols {
		data[i] = col.header
	}
	row, err := t.generateRow(data, true, opts.RowOptions)
	if err != nil {
		return "", err
	}
	if opts.Divider == "" {
		return row, nil
	}
	return row + "\n" + ansi.AlignLeft("", t.totalWidth(opts.RowOptions), opts.Divider), nil
}

// GenerateDataRow renders one data row. The value count must equal the
// column count; values are stringified with fmt.Sprint.
func (t *TableCreator) GenerateDataRow(data []any, opts RowOptions) (string, error) {
	return t.generateRow(data, false, opts)
}

// generateRow validates the whole call, renders each column's cell, pads
// short cells to the row height per column vertical alignment, and joins
// everything with the decoration strings.
func (t *TableCreator) generateRow(data []any, isHeader bool, opts RowOptions) (string, error) {
	if len(data) != len(t.cols) {
		return "", errors.Errorf("number of data values (%d) must match the number of columns (%d)",
			len(data), len(t.cols))
	}
	fill := opts.FillChar
	if fill == "" {
		fill = " "
	}
	if err := validateFill("fill character", fill); err != nil {
		return "", err
	}
	for _, dec := range []struct{ name, s string }{
		{"pre-line string", opts.PreLine},
		{"inter-cell string", opts.InterCell},
		{"post-line string", opts.PostLine},
	} {
		if ansi.StringWidth(dec.s) == ansi.Unprintable {
			return "", errors.Errorf("%s contains an unprintable character", dec.name)
		}
	}

	cells := make([]cell, len(t.cols))
	numLines := 0
	for i, col := range t.cols {
		cells[i] = t.generateCell(data[i], isHeader, col, fill)
		if n := len(cells[i].lines); n > numLines {
			numLines = n
		}
	}

	for i := range cells {
		gap := numLines - len(cells[i].lines)
		if gap == 0 {
			continue
		}
		col := t.cols[i]
		align := col.dataVertAlign
		if isHeader {
			align = col.headerVertAlign
		}
		fillLine := ansi.AlignLeft("", cells[i].width, fill)
		cells[i].lines = padLines(cells[i].lines, fillLine, gap, align)
	}

	var buf strings.Builder
	for li := 0; li < numLines; li++ {
		if li > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(opts.PreLine)
		for ci := range cells {
			if ci > 0 {
				buf.WriteString(opts.InterCell)
			}
			buf.WriteString(cells[ci].lines[li])
		}
		buf.WriteString(opts.PostLine)
	}
	return buf.String(), nil
}

// padLines grows a cell to the row height with full-width fill lines.
// MIDDLE puts the odd leftover line in the bottom half.
func padLines(lines []string, fillLine string, gap int, align VerticalAlignment) []string {
	fills := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fillLine
		}
		return out
	}
	switch align {
	case AlignBottom:
		return append(fills(gap), lines...)
	case AlignMiddle:
		top := gap / 2
		out := append(fills(top), lines...)
		return append(out, fills(gap-top)...)
	default: // AlignTop
		return append(lines, fills(gap)...)
	}
}

// totalWidth is the display width of one rendered row line.
func (t *TableCreator) totalWidth(opts RowOptions) int {
	total := ansi.StringWidth(opts.PreLine) + ansi.StringWidth(opts.PostLine) +
		(len(t.cols)-1)*ansi.StringWidth(opts.InterCell)
	for _, col := range t.cols {
		total += col.width
	}
	return total
}

// validateFill ensures s is exactly one printable character once style
// sequences are stripped.
func validateFill(name, s string) error {
	if utf8.RuneCountInString(ansi.Strip(s)) != 1 {
		return errors.Errorf("%s must be exactly one character long", name)
	}
	if ansi.StringWidth(s) == ansi.Unprintable {
		return errors.Errorf("%s is an unprintable character", name)
	}
	return nil
}
