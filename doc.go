// Package unicodeellipsis truncates Unicode strings to a given display width,
// adding an ellipsis marker when the string is too long.
//
// The module is split into subpackages that can be used independently:
//
//   - width: display-width measurement for strings and grapheme clusters
//   - truncate: width-aware truncation with a trailing or leading ellipsis
//
// # Quick Start
//
// Truncation:
//
//	import "github.com/ClementTsang/unicode-ellipsis/truncate"
//	short := truncate.String("Test (施氏食獅史) Test", 10)
//
// Width measurement:
//
//	import "github.com/ClementTsang/unicode-ellipsis/width"
//	cols := width.String("🇨🇦加拿大")
//
// # Design Philosophy
//
// The library follows these principles:
//
//   - Grapheme clusters are never split; what the user perceives as one
//     character stays one character
//   - Every operation is total: no errors, no panics, defined output for any
//     input including width 0
//   - Pure functions over their inputs, safe for concurrent use
//   - Interfaces for extensibility, concrete types for simplicity
package unicodeellipsis
