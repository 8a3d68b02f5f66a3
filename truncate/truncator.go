package truncate

import "github.com/ClementTsang/unicode-ellipsis/width"

// Direction defines which side of the string content is cut from.
type Direction int

const (
	// Trailing keeps the start of the string and cuts content from the end.
	Trailing Direction = iota

	// Leading keeps the end of the string and cuts content from the start.
	Leading
)

// Ellipsis is the marker attached where content was cut. It occupies a
// single display column.
const Ellipsis = "…"

// ellipsisLen is the UTF-8 encoded size of Ellipsis, used to pre-size output
// buffers.
const ellipsisLen = len(Ellipsis)

// Truncator truncates text to fit within a display-width budget.
type Truncator struct {
	measurer  width.Measurer
	direction Direction
}

// New creates a truncator cutting in the given direction, measuring widths
// with the standard measurer.
func New(direction Direction) *Truncator {
	return &Truncator{
		measurer:  width.NewStandardMeasurer(),
		direction: direction,
	}
}

// NewTrailing creates a truncator that cuts content from the end.
func NewTrailing() *Truncator {
	return New(Trailing)
}

// NewLeading creates a truncator that cuts content from the start.
func NewLeading() *Truncator {
	return New(Leading)
}

// WithMeasurer sets a custom width measurer.
func (t *Truncator) WithMeasurer(m width.Measurer) *Truncator {
	t.measurer = m
	return t
}

// Truncate returns text reduced to at most targetWidth display columns.
// If anything was cut, the ellipsis marker is attached on the cut side; if
// the text already fits, it is returned unchanged with no marker. The result
// never splits a grapheme cluster or a codepoint encoding.
func (t *Truncator) Truncate(text string, targetWidth int) string {
	// Encoded byte length is always >= display width, so a text whose byte
	// length already fits trivially fits by width as well.
	if len(text) <= targetWidth {
		return text
	}

	if targetWidth <= 0 {
		// The marker itself would exceed a zero budget.
		return ""
	}

	if t.direction == Leading {
		return t.truncateLeading(text, targetWidth)
	}
	return t.truncateTrailing(text, targetWidth)
}

// Direction returns the truncator's cut direction.
func (t *Truncator) Direction() Direction {
	return t.direction
}

// Measurer returns the truncator's width measurer.
func (t *Truncator) Measurer() width.Measurer {
	return t.measurer
}
