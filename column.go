package tabular

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tabular/ansi"
)

// HorizontalAlignment specifies text placement within a cell line
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment specifies where cell lines sit within a row block
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// widthAuto marks a column whose width derives from its header.
const widthAuto = -1

// Column is an immutable table column configuration. Construct with
// NewColumn; the zero value is not usable.
type Column struct {
	header string
	width  int

	headerHorizAlign HorizontalAlignment
	headerVertAlign  VerticalAlignment
	dataHorizAlign   HorizontalAlignment
	dataVertAlign    VerticalAlignment

	// Maximum lines a data cell may occupy. Headers are never capped.
	maxDataLines int
}

// ColumnOption configures a Column during construction
type ColumnOption func(*Column)

// WithWidth fixes the column's display width. Without it the width
// defaults to the widest line of the header (tabs measured at the default
// tab width), or 1 for a blank header.
func WithWidth(width int) ColumnOption {
	return func(c *Column) { c.width = width }
}

// WithMaxDataLines caps the number of lines a data cell may occupy.
// Content past the cap is truncated with an ellipsis.
func WithMaxDataLines(n int) ColumnOption {
	return func(c *Column) { c.maxDataLines = n }
}

// WithHeaderAlignment sets horizontal alignment for the header cell.
func WithHeaderAlignment(a HorizontalAlignment) ColumnOption {
	return func(c *Column) { c.headerHorizAlign = a }
}

// WithHeaderVerticalAlignment sets vertical alignment for the header cell.
// Defaults to AlignBottom.
func WithHeaderVerticalAlignment(a VerticalAlignment) ColumnOption {
	return func(c *Column) { c.headerVertAlign = a }
}

// WithDataAlignment sets horizontal alignment for data cells.
func WithDataAlignment(a HorizontalAlignment) ColumnOption {
	return func(c *Column) { c.dataHorizAlign = a }
}

// WithDataVerticalAlignment sets vertical alignment for data cells.
// Defaults to AlignTop.
func WithDataVerticalAlignment(a VerticalAlignment) ColumnOption {
	return func(c *Column) { c.dataVertAlign = a }
}

// NewColumn builds an immutable column definition for header text, which
// may span multiple lines and carry style sequences.
func NewColumn(header string, opts ...ColumnOption) (Column, error) {
	col := Column{
		header:          header,
		width:           widthAuto,
		headerVertAlign: AlignBottom,
		dataVertAlign:   AlignTop,
		maxDataLines:    unboundedLines,
	}
	for _, opt := range opts {
		opt(&col)
	}

	if col.width != widthAuto && col.width < 1 {
		return Column{}, errors.New("column width cannot be less than 1")
	}
	if col.maxDataLines < 1 {
		return Column{}, errors.New("max data lines cannot be less than 1")
	}

	if col.width == widthAuto {
		// Measure the way the renderer will see it: tabs expanded, other
		// control characters at zero columns.
		expanded := strings.ReplaceAll(header, "\t", strings.Repeat(" ", defaultTabWidth))
		col.width = 1
		for _, line := range splitLines(expanded) {
			if w := ansi.VisibleWidth(line); w > col.width {
				col.width = w
			}
		}
	}
	return col, nil
}

// Header returns the column's header text.
func (c Column) Header() string { return c.header }

// Width returns the column's fixed display width.
func (c Column) Width() int { return c.width }
