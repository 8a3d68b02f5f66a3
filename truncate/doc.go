// Package truncate shortens Unicode strings to fit a display-width budget,
// attaching an ellipsis marker when content was cut.
//
// Truncation is grapheme-cluster aware: multi-byte encodings, combining
// marks, regional-indicator flag pairs, and zero-width-joiner emoji are never
// split. The output is always either the input unchanged (when it already
// fits) or a contiguous prefix/suffix of the input plus the marker, and its
// display width never exceeds the budget.
//
// # Directions
//
// Two cut directions are available:
//
//   - Trailing: keep the start of the string, cut the end (default)
//   - Leading: keep the end of the string, cut the start
//
// # Basic Usage
//
// Create a truncator and truncate text:
//
//	tr := truncate.NewTrailing()
//	short := tr.Truncate("Test (施氏食獅史) Test", 10)
//
// Or use the package-level convenience functions:
//
//	short := truncate.String("CPU(c)▲", 6)         // "CPU(c…"
//	short := truncate.StringLeading("▲CPU(c)", 6)  // "…PU(c)"
//
// # Custom Width Measurement
//
// By default widths come from the standard Unicode tables. For terminals
// whose rendering diverges from the tables, provide a different measurer:
//
//	tr := truncate.NewTrailing().WithMeasurer(width.NewTerminalMeasurer())
//
// # Performance
//
// Mostly-ASCII strings are truncated byte by byte without any grapheme
// segmentation; only the non-ASCII remainder pays for cluster walking. Every
// call allocates at most one output buffer, pre-sized so it never grows.
package truncate
