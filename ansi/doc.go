// Package ansi provides the display-measurement primitives the table
// layout engine is built on: locating SGR style sequences inside a string,
// stripping them, computing true on-screen width, and padding single lines.
//
// Width rules:
//   - style sequences (ESC [ ... m) occupy zero columns
//   - zero-width marks occupy zero columns
//   - wide characters (e.g. East-Asian glyphs) occupy two columns
//   - control characters, including bare newlines, report Unprintable
//
// All functions are pure and safe for concurrent use.
package ansi
