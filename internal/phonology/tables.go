package phonology

// FinalConstraint says whether a nucleus pattern can, must, or must not be
// followed by a final consonant.
type FinalConstraint int

const (
	FinalOptional FinalConstraint = iota
	FinalForbidden
	FinalRequired
)

// Pattern is one valid nucleus shape: the marked (toneless) vowel sequence,
// the rune index the tone anchors to, and its final constraint.
type Pattern struct {
	Nucleus string
	Anchor  int
	Final   FinalConstraint
}

// initials are the onsets of native Vietnamese syllables, including the empty
// onset. Bare p, f, w, j and z are deliberately absent: native words use ph
// for /f/ and never start with the others.
var initials = []string{
	"",
	"b", "c", "ch", "d", "đ", "g", "gh", "gi", "h", "k", "kh",
	"l", "m", "n", "ng", "ngh", "nh", "ph", "qu", "r", "s", "t",
	"th", "tr", "v", "x",
}

// finals are the valid closing consonants, including the empty final.
// Semivowel endings (y u i o) live inside the nucleus patterns instead.
var finals = []string{"", "c", "ch", "m", "n", "ng", "nh", "p", "t"}

// stopFinals admit only the acute and dot tones.
var stopFinals = map[string]bool{"c": true, "ch": true, "p": true, "t": true}

// patterns enumerates every valid nucleus. Anchor indexes follow modern
// orthography: two-vowel patterns anchor the first vowel except oa, oe, uy
// and uê; marked patterns anchor their marked (or rightmost marked) vowel.
var patterns = []Pattern{
	// Single vowels. ă and â never close a word on their own.
	{"a", 0, FinalOptional},
	{"ă", 0, FinalRequired},
	{"â", 0, FinalRequired},
	{"e", 0, FinalOptional},
	{"ê", 0, FinalOptional},
	{"i", 0, FinalOptional},
	{"o", 0, FinalOptional},
	{"ô", 0, FinalOptional},
	{"ơ", 0, FinalOptional},
	{"u", 0, FinalOptional},
	{"ư", 0, FinalOptional},
	{"y", 0, FinalOptional},

	// Closed diphthongs: second vowel is a semivowel ending the syllable.
	{"ai", 0, FinalForbidden},
	{"ao", 0, FinalForbidden},
	{"au", 0, FinalForbidden},
	{"ay", 0, FinalForbidden},
	{"âu", 0, FinalForbidden},
	{"ây", 0, FinalForbidden},
	{"eo", 0, FinalForbidden},
	{"êu", 0, FinalForbidden},
	{"ia", 0, FinalForbidden},
	{"iu", 0, FinalForbidden},
	{"oi", 0, FinalForbidden},
	{"ôi", 0, FinalForbidden},
	{"ơi", 0, FinalForbidden},
	{"ua", 0, FinalForbidden},
	{"ui", 0, FinalForbidden},
	{"ưa", 0, FinalForbidden},
	{"ưi", 0, FinalForbidden},
	{"ưu", 0, FinalForbidden},

	// Open diphthongs that take (or require) a final.
	{"iê", 1, FinalRequired},
	{"yê", 1, FinalRequired},
	{"oa", 1, FinalOptional},
	{"oă", 1, FinalRequired},
	{"oe", 1, FinalOptional},
	{"oo", 0, FinalRequired},
	{"uâ", 1, FinalRequired},
	{"uê", 1, FinalOptional},
	{"uô", 1, FinalRequired},
	{"uơ", 1, FinalForbidden},
	{"uy", 1, FinalOptional},
	{"ươ", 1, FinalRequired},

	// Triphthongs.
	{"iêu", 1, FinalForbidden},
	{"yêu", 1, FinalForbidden},
	{"oai", 1, FinalForbidden},
	{"oao", 1, FinalForbidden},
	{"oay", 1, FinalForbidden},
	{"oeo", 1, FinalForbidden},
	{"uây", 1, FinalForbidden},
	{"uôi", 1, FinalForbidden},
	{"uya", 1, FinalForbidden},
	{"uyê", 2, FinalRequired},
	{"uyu", 1, FinalForbidden},
	{"ươi", 1, FinalForbidden},
	{"ươu", 1, FinalForbidden},
}

var (
	initialSet = make(map[string]bool, len(initials))
	finalSet   = make(map[string]bool, len(finals))
	patternSet = make(map[string]Pattern, len(patterns))
)

func init() {
	for _, s := range initials {
		initialSet[s] = true
	}
	for _, s := range finals {
		finalSet[s] = true
	}
	for _, p := range patterns {
		patternSet[p.Nucleus] = p
	}
}

// ValidInitial reports whether s is a valid syllable onset.
func ValidInitial(s string) bool { return initialSet[s] }

// ValidFinal reports whether s is a valid syllable coda.
func ValidFinal(s string) bool { return finalSet[s] }

// FindPattern looks up the nucleus pattern for a marked, toneless vowel
// sequence.
func FindPattern(nucleus string) (Pattern, bool) {
	p, ok := patternSet[nucleus]
	return p, ok
}
