// Package telex classifies raw Telex keystrokes and composes accented
// Vietnamese runes from base letters, diacritic marks and tones.
package telex

// Tone is one of the six Vietnamese tones. ToneLevel is the unmarked tone.
type Tone int

const (
	ToneLevel Tone = iota
	ToneAcute      // sắc, typed s
	ToneGrave      // huyền, typed f
	ToneHook       // hỏi, typed r
	ToneTilde      // ngã, typed x
	ToneDot        // nặng, typed j
)

// Mark is a per-letter diacritic shape, independent of tone.
type Mark int

const (
	MarkNone       Mark = iota
	MarkCircumflex      // â ê ô, typed by doubling the vowel
	MarkHorn            // ơ ư, typed w
	MarkBreve           // ă, typed w
	MarkBar             // đ, typed by doubling d
)

// toneKeys maps the five Telex tone letters to their tones. The z key is
// separate: it clears the tone instead of setting one.
var toneKeys = map[rune]Tone{
	's': ToneAcute,
	'f': ToneGrave,
	'r': ToneHook,
	'x': ToneTilde,
	'j': ToneDot,
}

// ToneKey reports whether r is one of the five Telex tone letters and which
// tone it applies.
func ToneKey(r rune) (Tone, bool) {
	t, ok := toneKeys[r]
	return t, ok
}

// IsToneClear reports whether r is the tone-removal key.
func IsToneClear(r rune) bool { return r == 'z' }

// IsMarkKey reports whether r is the horn/breve key.
func IsMarkKey(r rune) bool { return r == 'w' }

// IsDoubleKey reports whether typing r twice in a row triggers a marked form
// (aa→â, ee→ê, oo→ô, dd→đ).
func IsDoubleKey(r rune) bool {
	return r == 'a' || r == 'e' || r == 'o' || r == 'd'
}

// IsVowel reports whether r is a plain ASCII vowel letter (y included).
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// IsLetter reports whether r is an ASCII letter key the engine consumes.
// Everything else is a Break.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsBreak reports whether r ends the current word.
func IsBreak(r rune) bool { return !IsLetter(r) }
