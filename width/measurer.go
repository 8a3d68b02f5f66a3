package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StandardMeasurer measures clusters with the generic Unicode width tables,
// handing each cluster to the tables as a whole so that combining marks,
// variation selectors, and emoji presentation sequences are already accounted
// for in the aggregate result.
type StandardMeasurer struct{}

// NewStandardMeasurer creates the default measurer.
func NewStandardMeasurer() *StandardMeasurer {
	return &StandardMeasurer{}
}

// Grapheme returns the width of a single grapheme cluster.
//
// Clusters containing a zero-width joiner are always 2 columns wide: ZWJ
// sequences (multi-person emoji, professional emoji) render as a single wide
// glyph in virtually all terminals, regardless of what the per-codepoint
// tables report for their components.
func (m *StandardMeasurer) Grapheme(cluster string) int {
	if strings.ContainsRune(cluster, zwj) {
		return 2
	}
	return uniseg.StringWidth(cluster)
}

// String returns the total width of text, summed over its grapheme clusters
// in order.
func (m *StandardMeasurer) String(text string) int {
	total := 0
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		total += m.Grapheme(cluster)
	}
	return total
}

// TerminalMeasurer measures clusters the way wcwidth-style terminals draw
// them: each codepoint is measured individually and summed, with variation
// selectors skipped. This classifies some sequences differently from the
// standard tables, e.g. emoji-presentation hearts stay narrow and some South
// Asian combining sequences collapse to the width of their base consonant.
type TerminalMeasurer struct {
	cond *runewidth.Condition
}

// NewTerminalMeasurer creates a terminal-tuned measurer. The underlying
// runewidth condition honors East Asian ambiguous-width environment settings.
func NewTerminalMeasurer() *TerminalMeasurer {
	return &TerminalMeasurer{cond: runewidth.NewCondition()}
}

// Grapheme returns the width of a single grapheme cluster. The ZWJ override
// described on [StandardMeasurer.Grapheme] applies here as well, taking
// precedence over the per-codepoint sum.
func (m *TerminalMeasurer) Grapheme(cluster string) int {
	if strings.ContainsRune(cluster, zwj) {
		return 2
	}
	total := 0
	for _, r := range cluster {
		if r >= 0xfe00 && r <= 0xfe0f {
			// Variation selectors 1-16
			continue
		}
		if r >= 0xe0100 && r <= 0xe01ef {
			// Variation selectors 17-256
			continue
		}
		total += m.cond.RuneWidth(r)
	}
	return total
}

// String returns the total width of text, summed over its grapheme clusters
// in order.
func (m *TerminalMeasurer) String(text string) int {
	total := 0
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		total += m.Grapheme(cluster)
	}
	return total
}
