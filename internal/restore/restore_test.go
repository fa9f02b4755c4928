package restore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndtrung/vikey/internal/engine"
)

func classify(t *testing.T, c *Classifier, keys string) Decision {
	t.Helper()
	b := engine.New()
	for _, r := range keys {
		b.ProcessKey(r)
	}
	return c.Classify(b.Snapshot())
}

func TestClassifyKeepsVietnamese(t *testing.T) {
	keep := []string{
		"mas",      // má
		"tooi",     // tôi
		"vieetj",   // việt
		"dduwowcj", // được
		"muwowjt",  // mượt, tone before the stop final on a marked nucleus
		"nuwowcs",  // nước
		"cura",     // của, vowel completes ua after the tone
		"muar",     // mủa
		"these",    // thế, trailing e merges as a double
		"thees",    // thế
		"conf",     // còn
		"cons",     // cón
		"giuwax",   // giữa
		"khoong",   // không
		"gox",      // gõ
		"nawm",     // năm
		"awn",      // ăn
		"ooir",     // ổi
		"there",    // thể, trailing e merges as a double
	}
	c := New()
	for _, w := range keep {
		assert.Equal(t, Keep, classify(t, c, w), "%q should keep", w)
	}
}

func TestClassifyRestoresEnglish(t *testing.T) {
	restore := []string{
		// tone key absorbed, then more consonants over a plain nucleus
		"test", "text", "most", "post", "disk", "desk", "mask", "lost",
		// impossible raw onsets
		"fix", "flow", "just", "pair", "window", "what", "class", "string", "zoo",
		// literal or breve w
		"wow", "raw", "law",
		// vowel typed after the tone was absorbed
		"core", "use", "score",
		// undecomposable
		"their", "weird", "expect", "excel",
	}
	c := New()
	for _, w := range restore {
		assert.Equal(t, Restore, classify(t, c, w), "%q should restore", w)
	}
}

func TestClassifyBareDigraphFamily(t *testing.T) {
	c := New()

	// allow-listed: real words with no onset and an absorbed tone
	for _, w := range []string{"air", "aos", "uar", "ois"} {
		assert.Equal(t, Keep, classify(t, c, w), "%q is allow-listed", w)
	}

	// same shape, not allow-listed
	for _, w := range []string{"eos", "ayr", "aus"} {
		assert.Equal(t, Restore, classify(t, c, w), w)
	}
}

func TestClassifyExtraAllowWords(t *testing.T) {
	plain := New()
	assert.Equal(t, Restore, classify(t, plain, "eos"))

	custom := New("eos")
	assert.Equal(t, Keep, classify(t, custom, "eos"))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := New()
	assert.Equal(t, Restore, classify(t, c, "Test"))
	assert.Equal(t, Keep, classify(t, c, "Tooi"))
	assert.Equal(t, Keep, classify(t, c, "Air"))
}

func TestKnownFalseNegatives(t *testing.T) {
	// English words that are structurally perfect Vietnamese stay converted;
	// the fix is manual cancel, not a dictionary
	c := New()
	assert.Equal(t, Keep, classify(t, c, "mix")) // mĩ
	assert.Equal(t, Keep, classify(t, c, "box")) // bõ
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "restore", Restore.String())
}

func TestAllowlistCopy(t *testing.T) {
	a := Allowlist()
	a["test"] = "bogus"
	assert.NotContains(t, Allowlist(), "test")
}
