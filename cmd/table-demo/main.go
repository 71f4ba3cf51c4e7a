// Demonstrates the table layout engine: a borderless table with a divider,
// a box-drawn bordered table, and a colored table with striped rows.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/lixenwraith/tabular"
)

var (
	styleHeader = color.New(color.FgHiYellow, color.Bold)
	styleBlue   = color.New(color.FgHiBlue)
	styleGreen  = color.New(color.FgGreen)
	styleStripe = color.New(color.BgHiBlack)
)

func buildColumns() ([]tabular.Column, error) {
	name, err := tabular.NewColumn("Name", tabular.WithWidth(20))
	if err != nil {
		return nil, err
	}
	address, err := tabular.NewColumn("Address", tabular.WithWidth(40))
	if err != nil {
		return nil, err
	}
	income, err := tabular.NewColumn("Income", tabular.WithWidth(13),
		tabular.WithHeaderAlignment(tabular.AlignRight),
		tabular.WithDataAlignment(tabular.AlignRight))
	if err != nil {
		return nil, err
	}
	return []tabular.Column{name, address, income}, nil
}

func dataRows() [][]any {
	return [][]any{
		{
			"Billy Smith",
			"123 Sesame St.\nFake Town, USA 33445",
			"$100,333.03",
		},
		{
			"William LongFellow Marmaduke III",
			"984 Really Long Street Name Which Will Wrap Nicely\nApt 22G\nPensacola, FL 99888",
			"$55,135.22",
		},
		{
			"James " + styleBlue.Sprint("  Anderson"),
			styleHeader.Sprint("This address has line feeds,\ntext style,") +
				styleBlue.Sprint(" and changes color while wrapping."),
			"$300,876.10",
		},
		{
			"John Jones",
			"9235 Highway 32\n" + styleGreen.Sprint("Color") + ", VA 88222",
			"$82,987.71",
		},
	}
}

// simpleTable is borderless with a dashed divider under the header and a
// blank line between rows.
func simpleTable(tc *tabular.TableCreator) error {
	opts := tabular.DefaultHeaderOptions()
	opts.Divider = "-"
	header, err := tc.GenerateHeaderRow(opts)
	if err != nil {
		return err
	}
	fmt.Println(header)

	for i, data := range dataRows() {
		if i > 0 {
			fmt.Println()
		}
		row, err := tc.GenerateDataRow(data, tabular.DefaultRowOptions())
		if err != nil {
			return err
		}
		fmt.Println(row)
	}
	return nil
}

// borderRow renders a horizontal border by filling an empty row.
func borderRow(tc *tabular.TableCreator, fill, pre, inter, post string) (string, error) {
	return tc.GenerateDataRow([]any{"", "", ""}, tabular.RowOptions{
		FillChar:  fill,
		PreLine:   pre,
		InterCell: inter,
		PostLine:  post,
	})
}

func borderedTable(tc *tabular.TableCreator) error {
	top, err := borderRow(tc, "═", "╔═", "═╤═", "═╗")
	if err != nil {
		return err
	}
	headerOpts := tabular.HeaderOptions{RowOptions: tabular.RowOptions{
		FillChar: " ", PreLine: "║ ", InterCell: " │ ", PostLine: " ║",
	}}
	header, err := tc.GenerateHeaderRow(headerOpts)
	if err != nil {
		return err
	}
	headerBottom, err := borderRow(tc, "═", "╠═", "═╪═", "═╣")
	if err != nil {
		return err
	}
	fmt.Println(top)
	fmt.Println(header)
	fmt.Println(headerBottom)

	rowOpts := tabular.RowOptions{FillChar: " ", PreLine: "║ ", InterCell: " │ ", PostLine: " ║"}
	for i, data := range dataRows() {
		if i > 0 {
			sep, err := borderRow(tc, "─", "╟─", "─┼─", "─╢")
			if err != nil {
				return err
			}
			fmt.Println(sep)
		}
		row, err := tc.GenerateDataRow(data, rowOpts)
		if err != nil {
			return err
		}
		fmt.Println(row)
	}

	bottom, err := borderRow(tc, "═", "╚═", "═╧═", "═╝")
	if err != nil {
		return err
	}
	fmt.Println(bottom)
	return nil
}

// coloredTable borders the table and stripes alternating rows with a
// background color, fill character included so the stripe spans the cell.
func coloredTable(tc *tabular.TableCreator) error {
	top, err := borderRow(tc, "═", "╔═", "═╤═", "═╗")
	if err != nil {
		return err
	}
	header, err := tc.GenerateHeaderRow(tabular.HeaderOptions{RowOptions: tabular.RowOptions{
		FillChar: " ", PreLine: "║ ", InterCell: " │ ", PostLine: " ║",
	}})
	if err != nil {
		return err
	}
	headerBottom, err := borderRow(tc, "═", "╠═", "═╪═", "═╣")
	if err != nil {
		return err
	}
	fmt.Println(top)
	fmt.Println(header)
	fmt.Println(headerBottom)

	for i, data := range dataRows() {
		space := " "
		if i%2 != 0 {
			space = styleStripe.Sprint(" ")
			for ci := range data {
				data[ci] = styleStripe.Sprint(data[ci])
			}
		}
		row, err := tc.GenerateDataRow(data, tabular.RowOptions{
			FillChar:  space,
			PreLine:   "║" + space,
			InterCell: space + "│" + space,
			PostLine:  space + "║",
		})
		if err != nil {
			return err
		}
		fmt.Println(row)
	}

	bottom, err := borderRow(tc, "═", "╚═", "═╧═", "═╝")
	if err != nil {
		return err
	}
	fmt.Println(bottom)
	return nil
}

func run(c *cli.Context) error {
	if c.Bool("color") {
		color.NoColor = false
	}

	cols, err := buildColumns()
	if err != nil {
		return err
	}
	tc, err := tabular.NewTableCreator(cols)
	if err != nil {
		return err
	}

	style := c.String("style")
	switch style {
	case "simple":
		return simpleTable(tc)
	case "bordered":
		return borderedTable(tc)
	case "colored":
		return coloredTable(tc)
	case "all":
		for _, f := range []func(*tabular.TableCreator) error{simpleTable, borderedTable, coloredTable} {
			if err := f(tc); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	default:
		return fmt.Errorf("unknown style %q", style)
	}
}

func main() {
	app := &cli.App{
		Name:  "table-demo",
		Usage: "render sample tables with the tabular layout engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "style",
				Value: "all",
				Usage: "table style: simple, bordered, colored, or all",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "emit style sequences even when stdout is not a terminal",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "table-demo:", err)
		os.Exit(1)
	}
}
