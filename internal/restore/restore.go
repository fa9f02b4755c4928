// Package restore implements the word-boundary ambiguity classifier: given
// the raw keystrokes, the rendered word and its phonological decomposition,
// it decides whether to keep the Vietnamese rendering or restore the raw
// (typically English) spelling.
//
// The rules are deliberately conservative: English words that happen to form
// structurally valid Vietnamese ("mix" → "mĩ", "box" → "bõ") are accepted as
// false negatives and left to manual cancel; genuine Vietnamese is protected
// only by the fixed allow-list, never by a dictionary.
package restore

import (
	"github.com/ndtrung/vikey/internal/engine"
	"github.com/ndtrung/vikey/internal/phonology"
	"github.com/ndtrung/vikey/internal/telex"
)

// Decision is the classifier verdict for one finalized word.
type Decision int

const (
	Keep Decision = iota
	Restore
)

func (d Decision) String() string {
	if d == Restore {
		return "restore"
	}
	return "keep"
}

// Classifier evaluates the restore rules. The zero value is not usable;
// construct with New.
type Classifier struct {
	allow map[string]bool
}

// New builds a classifier from the built-in allow-list plus any extra raw
// spellings the caller wants protected.
func New(extra ...string) *Classifier {
	allow := make(map[string]bool, len(allowlist)+len(extra))
	for raw := range allowlist {
		allow[raw] = true
	}
	for _, raw := range extra {
		allow[raw] = true
	}
	return &Classifier{allow: allow}
}

// Classify applies the rules in order; the first match decides and the
// default is Keep. It runs exactly once per word, at the boundary.
func (c *Classifier) Classify(a engine.Analysis) Decision {
	raw := []rune(a.RawLower)

	// Rule 1: no valid decomposition, nothing Vietnamese to keep.
	if !a.Valid {
		return Restore
	}

	// Rule 2: a tone key absorbed into a plain nucleus and then followed by
	// more consonants. Vietnamese typing order puts the tone after the coda
	// (or onto an already-marked nucleus); English words like "test" and
	// "text" hit exactly this shape.
	if toneThenConsonant(a, raw) {
		return Restore
	}

	// Rule 3: the keystrokes as typed start with an impossible onset
	// (bare f, w, p, consonant clusters).
	if !phonology.ValidRawOnset(a.RawLower) {
		return Restore
	}

	// Rule 4: a w that stayed literal. Vietnamese spelling has no w at all.
	for i, oc := range a.Outcomes {
		if raw[i] == 'w' && oc == engine.OutcomeLiteral {
			return Restore
		}
	}

	// Rule 5a: a vowel typed after the tone was already absorbed, unless it
	// merged as a double (these → thế) or completed ua/uo (cura → của).
	if vowelAfterTone(a, raw) {
		return Restore
	}

	// Rule 5b: no onset, plain vowel digraph, absorbed tone. Catches the
	// "air"/"are" family; real Vietnamese exceptions are allow-listed.
	if c.bareDigraphWithTone(a) {
		return Restore
	}

	return Keep
}

func toneThenConsonant(a engine.Analysis, raw []rune) bool {
	for i, oc := range a.Outcomes {
		if oc != engine.OutcomeTone || i+1 >= len(raw) {
			continue
		}
		next := raw[i+1]
		if a.Outcomes[i+1] == engine.OutcomeLiteral &&
			telex.IsLetter(next) && !telex.IsVowel(next) &&
			!nucleusMarked(a) {
			return true
		}
	}
	return false
}

func vowelAfterTone(a engine.Analysis, raw []rune) bool {
	toneSeen := false
	for i, oc := range a.Outcomes {
		switch oc {
		case engine.OutcomeTone:
			toneSeen = true
		case engine.OutcomeLiteral:
			if !toneSeen || !telex.IsVowel(raw[i]) {
				continue
			}
			if (raw[i] == 'a' || raw[i] == 'o') && prevLetterKey(a, raw, i) == 'u' {
				continue // ưa / ươ families
			}
			return true
		}
	}
	return false
}

// prevLetterKey walks back from key i to the nearest key that produced a
// letter slot and returns its rune.
func prevLetterKey(a engine.Analysis, raw []rune, i int) rune {
	for k := i - 1; k >= 0; k-- {
		switch a.Outcomes[k] {
		case engine.OutcomeLiteral, engine.OutcomeDouble:
			return raw[k]
		}
	}
	return 0
}

func (c *Classifier) bareDigraphWithTone(a engine.Analysis) bool {
	if a.Syllable.Initial != "" {
		return false
	}
	nucleus := []rune(a.Syllable.Nucleus)
	if len(nucleus) < 2 {
		return false
	}
	for _, r := range nucleus {
		if r > 'z' { // any marked vowel
			return false
		}
	}
	toneSeen := false
	for _, oc := range a.Outcomes {
		if oc == engine.OutcomeTone {
			toneSeen = true
		}
	}
	return toneSeen && !c.allow[a.RawLower]
}

func nucleusMarked(a engine.Analysis) bool {
	for _, lt := range a.Letters {
		if telex.IsVowel(lt.Base) && lt.Mark != telex.MarkNone {
			return true
		}
	}
	return false
}
