// Package engine implements the per-keystroke Telex transformation state
// machine. It owns the single in-flight word buffer and recomputes the full
// rendering from the raw keystrokes on every key, so tone re-anchoring falls
// out of recomputation instead of incremental patching.
package engine

import (
	"unicode"

	"github.com/ndtrung/vikey/internal/phonology"
	"github.com/ndtrung/vikey/internal/telex"
)

// MaxKeys caps the raw buffer. Keys past the cap are kept as plain literals;
// a word that long is never Vietnamese and the classifier will restore it.
const MaxKeys = 32

// Outcome records how one raw keystroke was consumed.
type Outcome int

const (
	OutcomeLiteral   Outcome = iota
	OutcomeTone              // consumed as a tone modifier
	OutcomeToneClear         // z, or a tone toggled off (toggle also appends the literal)
	OutcomeMark              // w consumed as horn/breve
	OutcomeMarkClear         // horn/breve toggled off
	OutcomeDouble            // second a/e/o/d consumed as a marked form
	OutcomeUndouble          // a double toggled back off
)

// Keystroke is one raw key, case-normalized with the shift state kept for
// render time.
type Keystroke struct {
	Lower rune
	Upper bool
}

// Letter is one rendered letter slot: base ASCII letter plus its mark.
type Letter struct {
	Base  rune
	Mark  telex.Mark
	Upper bool
}

// EditInstruction tells the host how to move from the previously rendered
// text to the new one: delete Delete characters, then insert Insert.
type EditInstruction struct {
	Delete int
	Insert string
}

// Analysis is the word-boundary snapshot handed to the restore classifier.
type Analysis struct {
	Raw      string // keystrokes verbatim, case preserved
	RawLower string
	Rendered string
	Letters  []Letter
	Tone     telex.Tone
	Outcomes []Outcome
	Syllable phonology.Syllable
	Valid    bool
}

// Buffer is the single in-flight word. Zero or one per engine instance;
// callers must serialize access.
type Buffer struct {
	raw      []Keystroke
	letters  []Letter
	tone     telex.Tone
	outcomes []Outcome
	syl      phonology.Syllable
	valid    bool
	rendered []rune
}

// New returns an empty word buffer.
func New() *Buffer { return &Buffer{} }

// Active reports whether a word is in flight.
func (b *Buffer) Active() bool { return len(b.raw) > 0 }

// Reset discards the in-flight word.
func (b *Buffer) Reset() { *b = Buffer{} }

// ProcessKey consumes one letter or modifier keystroke and returns the edit
// needed to update the rendered text. Break keys are the caller's business.
func (b *Buffer) ProcessKey(r rune) EditInstruction {
	b.raw = append(b.raw, Keystroke{Lower: unicode.ToLower(r), Upper: unicode.IsUpper(r)})
	prev := b.rendered
	b.recompute()
	ins := diff(prev, b.rendered)
	return ins
}

// PopKey removes the most recent keystroke and re-renders, so hosts can map
// backspace onto the in-flight word. No-op on an empty buffer.
func (b *Buffer) PopKey() EditInstruction {
	if len(b.raw) == 0 {
		return EditInstruction{}
	}
	b.raw = b.raw[:len(b.raw)-1]
	prev := b.rendered
	b.recompute()
	return diff(prev, b.rendered)
}

// Cancel atomically reverts the in-flight word to its raw keystrokes and
// resets the buffer. Calling it with no word in flight is a no-op.
func (b *Buffer) Cancel() EditInstruction {
	ins := EditInstruction{Delete: len(b.rendered), Insert: b.RawString()}
	b.Reset()
	return ins
}

// Snapshot captures the current word state for the classifier.
func (b *Buffer) Snapshot() Analysis {
	return Analysis{
		Raw:      b.RawString(),
		RawLower: b.rawLower(),
		Rendered: string(b.rendered),
		Letters:  b.letters,
		Tone:     b.tone,
		Outcomes: b.outcomes,
		Syllable: b.syl,
		Valid:    b.valid,
	}
}

// RawString returns the raw keystrokes verbatim, case preserved.
func (b *Buffer) RawString() string {
	rs := make([]rune, len(b.raw))
	for i, k := range b.raw {
		rs[i] = k.Lower
		if k.Upper {
			rs[i] = unicode.ToUpper(k.Lower)
		}
	}
	return string(rs)
}

// Rendered returns the currently rendered word.
func (b *Buffer) Rendered() string { return string(b.rendered) }

func (b *Buffer) rawLower() string {
	rs := make([]rune, len(b.raw))
	for i, k := range b.raw {
		rs[i] = k.Lower
	}
	return string(rs)
}

// recompute rebuilds letters, tone, decomposition and rendering from the raw
// buffer. Correctness over minimal work: the buffer is tiny.
func (b *Buffer) recompute() {
	b.letters = make([]Letter, 0, len(b.raw))
	b.tone = telex.ToneLevel
	b.outcomes = make([]Outcome, len(b.raw))
	for i, k := range b.raw {
		b.outcomes[i] = b.applyKey(i, k)
	}

	marked := make([]rune, len(b.letters))
	for i, lt := range b.letters {
		r, ok := telex.ApplyMark(lt.Base, lt.Mark)
		if !ok {
			r = lt.Base
		}
		marked[i] = r
	}
	b.syl, b.valid = phonology.Decompose(marked, b.tone)
	b.render()
}

func (b *Buffer) applyKey(i int, k Keystroke) Outcome {
	c := k.Lower
	if i >= MaxKeys {
		b.appendLiteral(k)
		return OutcomeLiteral
	}
	if t, ok := telex.ToneKey(c); ok && b.hasVowel() {
		if b.tone == t {
			b.tone = telex.ToneLevel
			b.appendLiteral(k)
			return OutcomeToneClear
		}
		b.tone = t
		return OutcomeTone
	}
	if telex.IsToneClear(c) && b.tone != telex.ToneLevel {
		b.tone = telex.ToneLevel
		return OutcomeToneClear
	}
	if telex.IsMarkKey(c) {
		if oc, ok := b.applyHorn(k); ok {
			return oc
		}
	}
	if telex.IsDoubleKey(c) {
		if oc, ok := b.applyDouble(k); ok {
			return oc
		}
	}
	b.appendLiteral(k)
	return OutcomeLiteral
}

func (b *Buffer) appendLiteral(k Keystroke) {
	b.letters = append(b.letters, Letter{Base: k.Lower, Upper: k.Upper})
}

func (b *Buffer) hasVowel() bool {
	for _, lt := range b.letters {
		if telex.IsVowel(lt.Base) {
			return true
		}
	}
	return false
}

// applyDouble handles aa→â, ee→ê, oo→ô and dd→đ, with a third press
// reverting to the two plain letters.
func (b *Buffer) applyDouble(k Keystroke) (Outcome, bool) {
	n := len(b.letters)
	if n == 0 {
		return 0, false
	}
	last := &b.letters[n-1]
	if last.Base != k.Lower {
		return 0, false
	}
	want := telex.MarkCircumflex
	if k.Lower == 'd' {
		want = telex.MarkBar
	}
	switch last.Mark {
	case telex.MarkNone:
		last.Mark = want
		return OutcomeDouble, true
	case want:
		last.Mark = telex.MarkNone
		b.appendLiteral(k)
		return OutcomeUndouble, true
	}
	return 0, false
}

// applyHorn handles the w key: ư, ơ, ă, and the uo pair horned together
// (ươ). A repeated w toggles the mark off and falls back to the literal.
func (b *Buffer) applyHorn(k Keystroke) (Outcome, bool) {
	hi := len(b.letters)
	for hi > 0 && !telex.IsVowel(b.letters[hi-1].Base) {
		hi--
	}
	lo := hi
	for lo > 0 && telex.IsVowel(b.letters[lo-1].Base) {
		lo--
	}
	if lo == hi {
		return 0, false
	}

	for p := lo; p+1 < hi; p++ {
		u, o := &b.letters[p], &b.letters[p+1]
		if u.Base != 'u' || o.Base != 'o' {
			continue
		}
		if u.Mark == telex.MarkHorn && o.Mark == telex.MarkHorn {
			u.Mark, o.Mark = telex.MarkNone, telex.MarkNone
			b.appendLiteral(k)
			return OutcomeMarkClear, true
		}
		if (u.Mark == telex.MarkNone || u.Mark == telex.MarkHorn) &&
			(o.Mark == telex.MarkNone || o.Mark == telex.MarkHorn) {
			u.Mark, o.Mark = telex.MarkHorn, telex.MarkHorn
			return OutcomeMark, true
		}
	}

	for p := hi - 1; p >= lo; p-- {
		lt := &b.letters[p]
		want := telex.MarkHorn
		if lt.Base == 'a' {
			want = telex.MarkBreve
		} else if lt.Base != 'u' && lt.Base != 'o' {
			continue
		}
		switch lt.Mark {
		case want:
			lt.Mark = telex.MarkNone
			b.appendLiteral(k)
			return OutcomeMarkClear, true
		case telex.MarkNone:
			lt.Mark = want
			return OutcomeMark, true
		}
	}
	return 0, false
}

// render composes the output runes, attaching the tone at the decomposition's
// anchor letter.
func (b *Buffer) render() {
	anchor := b.syl.Start + b.syl.Anchor
	out := make([]rune, len(b.letters))
	for i, lt := range b.letters {
		t := telex.ToneLevel
		if i == anchor {
			t = b.tone
		}
		out[i] = telex.Compose(lt.Base, lt.Mark, t, lt.Upper)
	}
	b.rendered = out
}

// diff reduces the old→new transition to a delete-then-insert over the
// common prefix. Minimizing the span is a freedom, not a contract.
func diff(old, new []rune) EditInstruction {
	p := 0
	for p < len(old) && p < len(new) && old[p] == new[p] {
		p++
	}
	return EditInstruction{Delete: len(old) - p, Insert: string(new[p:])}
}
