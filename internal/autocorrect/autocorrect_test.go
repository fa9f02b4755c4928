package autocorrect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeFromInt(t *testing.T) {
	assert.Equal(t, ModeOff, ModeFromInt(0))
	assert.Equal(t, ModeVietnamese, ModeFromInt(1))
	assert.Equal(t, ModeEnglish, ModeFromInt(2))
	assert.Equal(t, ModeAll, ModeFromInt(3))

	// unknown codes never activate a table
	assert.Equal(t, ModeOff, ModeFromInt(-1))
	assert.Equal(t, ModeOff, ModeFromInt(7))
}

func TestTryCorrectOff(t *testing.T) {
	e := New()
	_, ok := e.TryCorrect("teh")
	assert.False(t, ok)
	assert.Zero(t, e.Count())
}

func TestTryCorrectEnglish(t *testing.T) {
	e := New()
	e.SetMode(ModeEnglish)

	res, ok := e.TryCorrect("teh")
	require.True(t, ok)
	assert.Equal(t, "the", res.Corrected)
	assert.Equal(t, "teh", res.Original)
	assert.Equal(t, 3, res.Backspace)

	// the Vietnamese table is not consulted
	_, ok = e.TryCorrect("nà")
	assert.False(t, ok)
}

func TestTryCorrectVietnamese(t *testing.T) {
	e := New()
	e.SetMode(ModeVietnamese)

	res, ok := e.TryCorrect("nà")
	require.True(t, ok)
	assert.Equal(t, "là", res.Corrected)
	assert.Equal(t, 2, res.Backspace, "backspace counts runes, not bytes")

	_, ok = e.TryCorrect("teh")
	assert.False(t, ok)
}

func TestTryCorrectAll(t *testing.T) {
	e := New()
	e.SetMode(ModeAll)

	_, ok := e.TryCorrect("teh")
	assert.True(t, ok)
	_, ok = e.TryCorrect("nà")
	assert.True(t, ok)

	assert.Equal(t, len(vietnameseCorrections)+len(englishCorrections), e.Count())
}

func TestCaseMirroring(t *testing.T) {
	e := New()
	e.SetMode(ModeEnglish)

	cases := []struct{ in, want string }{
		{"teh", "the"},
		{"Teh", "The"},
		{"TEH", "THE"},
		{"tEh", "the"}, // mixed case falls back to the table form
	}
	for _, c := range cases {
		res, ok := e.TryCorrect(c.in)
		require.True(t, ok, c.in)
		assert.Equal(t, c.want, res.Corrected, c.in)
	}
}

func TestCaseMirroringSingleLetter(t *testing.T) {
	e := New()
	e.SetMode(ModeVietnamese)

	// a lone capital is Title, not ALL CAPS
	res, ok := e.TryCorrect("J")
	require.True(t, ok)
	assert.Equal(t, "Gì", res.Corrected)
}

func TestSetModeRebuildsTable(t *testing.T) {
	e := New()
	e.SetMode(ModeEnglish)
	require.NotZero(t, e.Count())

	e.SetMode(ModeOff)
	assert.Zero(t, e.Count())
	_, ok := e.TryCorrect("teh")
	assert.False(t, ok)

	e.SetMode(ModeVietnamese)
	assert.Equal(t, len(vietnameseCorrections), e.Count())
}

func TestAddCorrections(t *testing.T) {
	e := New()
	e.AddCorrections(map[string]string{"btw": "by the way", "teh": "tech"})
	e.SetMode(ModeEnglish)

	res, ok := e.TryCorrect("btw")
	require.True(t, ok)
	assert.Equal(t, "by the way", res.Corrected)

	// user entries win over built-ins
	res, ok = e.TryCorrect("teh")
	require.True(t, ok)
	assert.Equal(t, "tech", res.Corrected)

	// adding after SetMode patches the live table too
	e.AddCorrections(map[string]string{"imho": "in my opinion"})
	_, ok = e.TryCorrect("imho")
	assert.True(t, ok)
}

func TestAddCorrectionsDropsSelfMaps(t *testing.T) {
	e := New()
	e.AddCorrections(map[string]string{"same": "same", "Same": "same", "": "x"})
	e.SetMode(ModeEnglish)
	_, ok := e.TryCorrect("same")
	assert.False(t, ok)
}

func TestTableInvariants(t *testing.T) {
	vi := buildVietnamese()
	en := buildEnglish()

	assert.Len(t, vi, len(vietnameseCorrections), "duplicate Vietnamese keys")
	assert.Len(t, en, len(englishCorrections), "duplicate English keys")

	for wrong, right := range vi {
		assert.NotEqual(t, wrong, right, "self-map %q", wrong)
		assert.Equal(t, strings.ToLower(wrong), wrong, "keys are stored lowercase")
		assert.NotContains(t, en, wrong, "tables must be disjoint")
	}
	for wrong, right := range en {
		assert.NotEqual(t, wrong, right, "self-map %q", wrong)
		assert.Equal(t, strings.ToLower(wrong), wrong, "keys are stored lowercase")
	}
}

func TestPairsReturnCopies(t *testing.T) {
	p := VietnamesePairs()
	require.NotEmpty(t, p)
	p[0][0] = "mutated"
	assert.NotEqual(t, "mutated", VietnamesePairs()[0][0])
}
