package width

// zwj is the zero-width joiner, the codepoint that composes multi-person and
// professional emoji sequences into a single glyph.
const zwj = '‍'

// Measurer reports display widths in terminal columns.
type Measurer interface {
	// Grapheme returns the width of a single grapheme cluster.
	Grapheme(cluster string) int

	// String returns the total width of text.
	String(text string) int
}

// String returns the display width of text, segmenting it into grapheme
// clusters and summing their widths with the standard measurer.
func String(text string) int {
	return NewStandardMeasurer().String(text)
}

// Grapheme returns the display width of a single grapheme cluster with the
// standard measurer.
//
// While you can pass in an entire string, the function assumes the input is a
// single cluster (e.g. "a", "💎", "大", "🇨🇦") and measures it as one unit,
// making no attempt to split it into individual clusters. An empty cluster
// has width 0.
func Grapheme(cluster string) int {
	return NewStandardMeasurer().Grapheme(cluster)
}
