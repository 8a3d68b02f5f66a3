package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, 3, String("aaa"))
	assert.Equal(t, 1, String("a"))
	assert.Equal(t, 4, String("💎💎"))
	assert.Equal(t, 2, String("💎"))
	assert.Equal(t, 4, String("大大"))
	assert.Equal(t, 2, String("大"))
	assert.Equal(t, 4, String("🇨🇦🇨🇦"))
	assert.Equal(t, 2, String("🇨🇦"))
	assert.Equal(t, 5, String("हिन्दी"))
	assert.Equal(t, 2, String("हि"))
	assert.Equal(t, 0, String(""))
}

func TestGrapheme(t *testing.T) {
	assert.Equal(t, 1, Grapheme("a"))
	assert.Equal(t, 2, Grapheme("💎"))
	assert.Equal(t, 2, Grapheme("大"))
	assert.Equal(t, 2, Grapheme("🇨🇦"))
	assert.Equal(t, 2, Grapheme("हि"))
	assert.Equal(t, 0, Grapheme(""))
}

func TestGraphemeJoinerOverride(t *testing.T) {
	// ZWJ sequences are always two columns, whichever measurer is asked.
	family := "👨‍👨‍👧‍👦"
	scientist := "👩‍🔬"

	assert.Equal(t, 2, Grapheme(family))
	assert.Equal(t, 2, Grapheme(scientist))
	assert.Equal(t, 2, NewStandardMeasurer().Grapheme(family))
	assert.Equal(t, 2, NewTerminalMeasurer().Grapheme(family))
	assert.Equal(t, 2, NewTerminalMeasurer().Grapheme(scientist))
}

func TestStringEmojiPresentation(t *testing.T) {
	assert.Equal(t, 1, String("♥"))
	assert.Equal(t, 1, String("❤"))

	// U+2764 followed by variation selector-16 requests emoji presentation,
	// which the standard tables widen to two columns.
	assert.Equal(t, 2, String("❤️"))
}

func TestTerminalMeasurer(t *testing.T) {
	m := NewTerminalMeasurer()

	assert.Equal(t, 1, m.Grapheme("a"))
	assert.Equal(t, 2, m.Grapheme("大"))
	assert.Equal(t, 2, m.Grapheme("💎"))
	assert.Equal(t, 2, m.Grapheme("🇨🇦"), "two regional indicators, one column each")
	assert.Equal(t, 1, m.Grapheme("❤️"), "variation selector is skipped per codepoint")
	assert.Equal(t, 0, m.Grapheme(""))

	assert.Equal(t, 3, m.String("a大"))
	assert.Equal(t, 5, m.String("oh 🇨🇦"))
	assert.Equal(t, 0, m.String(""))
}

func TestMeasurersAgreeOnPlainText(t *testing.T) {
	inputs := []string{"", "hello", "CPU(c)", "施氏食獅史", "加gaa拿naa大daai", "💎💎"}

	std := NewStandardMeasurer()
	term := NewTerminalMeasurer()
	for _, in := range inputs {
		assert.Equal(t, std.String(in), term.String(in), "input %q", in)
	}
}

func BenchmarkStandardMeasurer(b *testing.B) {
	m := NewStandardMeasurer()
	text := "Test (施氏abc食abc獅史) 🇨🇦加gaa拿naa大daai🇨🇦 Test"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.String(text)
	}
}

func BenchmarkTerminalMeasurer(b *testing.B) {
	m := NewTerminalMeasurer()
	text := "Test (施氏abc食abc獅史) 🇨🇦加gaa拿naa大daai🇨🇦 Test"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.String(text)
	}
}
