// Package width measures the display width of Unicode text in terminal
// columns.
//
// Text is measured per grapheme cluster, so combining marks, variation
// selectors, regional-indicator flag pairs, and zero-width-joiner emoji
// sequences are counted the way a terminal draws them rather than per
// codepoint.
//
// # Basic Usage
//
// Measure a whole string or a single cluster:
//
//	cols := width.String("🇨🇦加拿大")  // 8
//	cols := width.Grapheme("大")       // 2
//
// # Measurers
//
// Two measurement strategies are available behind the Measurer interface:
//
//   - StandardMeasurer: the generic Unicode width tables, applied to the
//     cluster as a whole (default)
//   - TerminalMeasurer: wcwidth-style per-codepoint measurement, tuned to
//     match what most terminal emulators actually draw
//
// Both force clusters containing a zero-width joiner to width 2, since ZWJ
// sequences render as a single wide glyph in virtually all terminals.
package width
