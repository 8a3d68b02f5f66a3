package truncate

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// truncateTrailing cuts content from the end, keeping a prefix.
//
// Strings passing through terminal layout code are mostly ASCII, so the
// width budget is first spent byte by byte while the bytes are ASCII: each
// one is a whole codepoint of display width 1. The walk stops one byte short
// of the budget to leave a column for the marker. Only the non-ASCII
// remainder, if any, is handed to the grapheme-aware walk.
func (t *Truncator) truncateTrailing(text string, targetWidth int) string {
	bytesConsumed := 0
	for bytesConsumed < targetWidth-1 {
		if text[bytesConsumed] >= utf8.RuneSelf {
			return t.graphemeTrailing(text, bytesConsumed, targetWidth)
		}
		bytesConsumed++
	}

	if text[bytesConsumed] < utf8.RuneSelf {
		// The whole reachable budget was ASCII; no segmentation needed.
		return withTrailingEllipsis(text[:bytesConsumed])
	}
	return t.graphemeTrailing(text, bytesConsumed, targetWidth)
}

// graphemeTrailing walks grapheme clusters forward from the ASCII prefix
// already accepted, accumulating display width until the budget is exceeded.
func (t *Truncator) graphemeTrailing(text string, bytesConsumed, targetWidth int) string {
	currWidth := bytesConsumed

	// The accepted prefix is ASCII, so if it is non-empty the last accepted
	// cluster so far is a single byte.
	lastClusterLen := 0
	if currWidth > 0 {
		lastClusterLen = 1
	}

	exceeded := false
	rest := text[bytesConsumed:]
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusterWidth := t.measurer.Grapheme(cluster)
		if currWidth+clusterWidth > targetWidth {
			exceeded = true
			break
		}
		currWidth += clusterWidth
		lastClusterLen = len(cluster)
		bytesConsumed += lastClusterLen
	}

	if !exceeded {
		// Byte length was over the target but display width is not; the
		// text fits after all.
		return text
	}

	if currWidth == targetWidth {
		// The last cluster landed exactly on the budget, leaving no column
		// for the marker; give it back.
		bytesConsumed -= lastClusterLen
	}
	return withTrailingEllipsis(text[:bytesConsumed])
}

// truncateLeading cuts content from the start, keeping a suffix. It mirrors
// truncateTrailing, walking from the end of the string.
func (t *Truncator) truncateLeading(text string, targetWidth int) string {
	bytesConsumed := 0
	for bytesConsumed < targetWidth-1 {
		if text[len(text)-1-bytesConsumed] >= utf8.RuneSelf {
			return t.graphemeLeading(text, bytesConsumed, targetWidth)
		}
		bytesConsumed++
	}

	if text[len(text)-1-bytesConsumed] < utf8.RuneSelf {
		return withLeadingEllipsis(text[len(text)-bytesConsumed:])
	}
	return t.graphemeLeading(text, bytesConsumed, targetWidth)
}

// graphemeLeading walks grapheme clusters in reverse from the ASCII suffix
// already accepted, accumulating display width until the budget is exceeded.
func (t *Truncator) graphemeLeading(text string, bytesConsumed, targetWidth int) string {
	currWidth := bytesConsumed
	lastClusterLen := 0
	if currWidth > 0 {
		lastClusterLen = 1
	}

	exceeded := false
	clusters := segment(text[:len(text)-bytesConsumed])
	for i := len(clusters) - 1; i >= 0; i-- {
		clusterWidth := t.measurer.Grapheme(clusters[i])
		if currWidth+clusterWidth > targetWidth {
			exceeded = true
			break
		}
		currWidth += clusterWidth
		lastClusterLen = len(clusters[i])
		bytesConsumed += lastClusterLen
	}

	if !exceeded {
		return text
	}

	if currWidth == targetWidth {
		bytesConsumed -= lastClusterLen
	}
	return withLeadingEllipsis(text[len(text)-bytesConsumed:])
}

// segment splits text into its grapheme clusters, in order.
func segment(text string) []string {
	var clusters []string
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

func withTrailingEllipsis(kept string) string {
	var sb strings.Builder
	sb.Grow(len(kept) + ellipsisLen)
	sb.WriteString(kept)
	sb.WriteString(Ellipsis)
	return sb.String()
}

func withLeadingEllipsis(kept string) string {
	var sb strings.Builder
	sb.Grow(len(kept) + ellipsisLen)
	sb.WriteString(Ellipsis)
	sb.WriteString(kept)
	return sb.String()
}
