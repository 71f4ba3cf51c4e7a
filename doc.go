// Package tabular renders tabular data into fixed-width terminal text one
// row at a time, so a table never has to be held in memory.
//
// Width calculations are display-aware: embedded SGR style sequences count
// for nothing, East-Asian wide glyphs count for two columns, and zero-width
// marks for none. Cell text wraps at word boundaries with a character-level
// fallback for overlong words, and content past a column's line budget is
// truncated with a single ellipsis.
//
// Design principles:
//   - Stateless: Column and TableCreator are immutable after construction;
//     every render call is a pure function, safe to share across goroutines
//   - Row at a time: callers stream rows out as they produce them
//   - Styles never bleed: each cell line restores carried style state and
//     resets it before padding, so color cannot leak into fill or neighbors
//
// Usage pattern:
//
//	name, _ := tabular.NewColumn("Name", tabular.WithWidth(20))
//	income, _ := tabular.NewColumn("Income", tabular.WithWidth(13),
//	    tabular.WithDataAlignment(tabular.AlignRight))
//
//	tc, _ := tabular.NewTableCreator([]tabular.Column{name, income})
//	header, _ := tc.GenerateHeaderRow(tabular.DefaultHeaderOptions())
//	row, _ := tc.GenerateDataRow([]any{"Billy Smith", "$100,333.03"},
//	    tabular.DefaultRowOptions())
package tabular
