// Package phonology models the structure of Vietnamese syllables: valid
// initials, nucleus vowel patterns with their tone anchors, and finals.
package phonology

import (
	"strings"

	"github.com/ndtrung/vikey/internal/telex"
)

// vowels holds every plain and marked vowel rune a nucleus can contain.
var vowels = map[rune]bool{
	'a': true, 'ă': true, 'â': true,
	'e': true, 'ê': true,
	'i': true,
	'o': true, 'ô': true, 'ơ': true,
	'u': true, 'ư': true,
	'y': true,
}

// IsNucleusVowel reports whether r (marked or plain, lowercase) can be part
// of a nucleus.
func IsNucleusVowel(r rune) bool { return vowels[r] }

// Syllable is the three-part decomposition of a word: onset, vowel nucleus
// and coda. Nucleus holds marked but toneless vowels. Start is the letter
// index where the nucleus begins; Anchor is the nucleus-relative index the
// tone attaches to.
type Syllable struct {
	Initial string
	Nucleus string
	Final   string
	Start   int
	Anchor  int
}

// Decompose splits a sequence of marked, toneless, lowercase letters into a
// syllable and reports whether the split satisfies all three constraints at
// once: known initial, known nucleus pattern (with its final constraint) and
// known final. Stop finals additionally require an acute or dot tone.
//
// A best-effort split is always returned so callers can still render an
// in-progress or foreign word; only the boolean says whether the word is
// plausible Vietnamese.
func Decompose(letters []rune, tone telex.Tone) (Syllable, bool) {
	var syl Syllable

	i := 0
	for i < len(letters) && !vowels[letters[i]] {
		i++
	}
	onset := letters[:i]

	// gi and qu absorb their second letter into the onset when more vowels
	// follow: "giữa" is gi + ưa, "quà" is qu + a.
	if i < len(letters) {
		if len(onset) == 1 && onset[0] == 'g' && letters[i] == 'i' && i+1 < len(letters) && vowels[letters[i+1]] {
			i++
		} else if len(onset) == 1 && onset[0] == 'q' && letters[i] == 'u' && i+1 < len(letters) && vowels[letters[i+1]] {
			i++
		}
	}
	syl.Initial = string(letters[:i])
	syl.Start = i

	j := i
	for j < len(letters) && vowels[letters[j]] {
		j++
	}
	syl.Nucleus = string(letters[i:j])
	syl.Final = string(letters[j:])

	pat, patOK := FindPattern(syl.Nucleus)
	if patOK {
		syl.Anchor = pat.Anchor
	} else {
		syl.Anchor = defaultAnchor(syl.Nucleus, syl.Final != "")
	}

	if syl.Nucleus == "" {
		return syl, false
	}
	if !ValidInitial(syl.Initial) || !ValidFinal(syl.Final) || !patOK {
		return syl, false
	}
	switch pat.Final {
	case FinalForbidden:
		if syl.Final != "" {
			return syl, false
		}
	case FinalRequired:
		if syl.Final == "" {
			return syl, false
		}
	}
	if stopFinals[syl.Final] && tone != telex.ToneAcute && tone != telex.ToneDot {
		return syl, false
	}
	return syl, true
}

// ValidRawOnset checks the leading consonant letters of a raw ASCII word
// against the initial set before any Telex transformation: dd folds to đ and
// a lone q is accepted only when u follows. Used by the restore classifier,
// which judges the keystrokes as typed, not as rendered.
func ValidRawOnset(raw string) bool {
	rs := []rune(strings.ToLower(raw))
	i := 0
	for i < len(rs) && telex.IsLetter(rs[i]) && !telex.IsVowel(rs[i]) {
		i++
	}
	onset := string(rs[:i])
	if onset == "dd" {
		onset = "đ"
	}
	if onset == "q" {
		return i < len(rs) && rs[i] == 'u'
	}
	return ValidInitial(onset)
}

// defaultAnchor picks a tone position for nuclei outside the pattern table,
// so half-typed words still render reasonably: rightmost marked vowel first,
// then the conventional positional rules.
func defaultAnchor(nucleus string, hasFinal bool) int {
	rs := []rune(nucleus)
	for k := len(rs) - 1; k >= 0; k-- {
		if strings.ContainsRune("ăâêôơư", rs[k]) {
			return k
		}
	}
	switch {
	case len(rs) >= 3:
		return 1
	case len(rs) == 2 && hasFinal:
		return 1
	default:
		return 0
	}
}
