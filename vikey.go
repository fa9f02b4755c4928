// Package vikey is a Vietnamese Telex input method core. It turns a stream
// of keystrokes into edit instructions for the host text field, restores
// raw spellings for words that were never Vietnamese, and optionally fixes
// finished words against correction tables.
package vikey

import (
	"github.com/ndtrung/vikey/internal/autocorrect"
	"github.com/ndtrung/vikey/internal/engine"
	"github.com/ndtrung/vikey/internal/restore"
	"github.com/ndtrung/vikey/internal/telex"
)

// EditInstruction tells the host how to update its text: delete Delete
// characters before the cursor, then insert Insert.
type EditInstruction = engine.EditInstruction

// Option configures an Engine at construction.
type Option func(*options)

type options struct {
	allow       []string
	corrections map[string]string
	mode        autocorrect.Mode
	noRestore   bool
}

// WithAllowList protects extra raw spellings from auto-restore.
func WithAllowList(words ...string) Option {
	return func(o *options) { o.allow = append(o.allow, words...) }
}

// WithUserCorrections merges user wrong→right pairs on top of the built-in
// correction tables.
func WithUserCorrections(pairs map[string]string) Option {
	return func(o *options) { o.corrections = pairs }
}

// WithAutoCorrectMode sets the initial correction mode from its stored
// integer code. Unknown codes disable correction.
func WithAutoCorrectMode(code int) Option {
	return func(o *options) { o.mode = autocorrect.ModeFromInt(code) }
}

// WithoutAutoRestore disables the ambiguity classifier; every word keeps
// its Vietnamese rendering.
func WithoutAutoRestore() Option {
	return func(o *options) { o.noRestore = true }
}

// WordResult describes the last finalized word: what was typed, what the
// rendering was, and what the boundary pipeline settled on.
type WordResult struct {
	Raw       string
	Rendered  string
	Final     string
	Restored  bool
	Corrected bool
}

// Engine is one input session: a single in-flight word plus the word-boundary
// pipeline. Not safe for concurrent use.
type Engine struct {
	buf       *engine.Buffer
	cls       *restore.Classifier
	ac        *autocorrect.Engine
	noRestore bool

	last    WordResult
	hasLast bool
}

// New builds an engine. The zero configuration is plain Telex with
// auto-restore on and autocorrect off.
func New(opts ...Option) *Engine {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	ac := autocorrect.New()
	ac.AddCorrections(o.corrections)
	ac.SetMode(o.mode)
	return &Engine{
		buf:       engine.New(),
		cls:       restore.New(o.allow...),
		ac:        ac,
		noRestore: o.noRestore,
	}
}

// OnKey consumes one keystroke. Letters feed the in-flight word; anything
// else is a word break that finalizes it. The returned instruction already
// includes the break character itself.
func (e *Engine) OnKey(r rune) EditInstruction {
	if telex.IsBreak(r) {
		return e.finalize(string(r))
	}
	return e.buf.ProcessKey(r)
}

// Flush finalizes the in-flight word without a break character. Hosts call
// it on focus loss or commit.
func (e *Engine) Flush() EditInstruction {
	return e.finalize("")
}

// Backspace undoes the most recent keystroke of the in-flight word. With no
// word in flight it asks the host to delete one character of committed text.
func (e *Engine) Backspace() EditInstruction {
	if e.buf.Active() {
		return e.buf.PopKey()
	}
	return EditInstruction{Delete: 1}
}

// Cancel reverts the in-flight word to its raw keystrokes and ends it.
func (e *Engine) Cancel() EditInstruction {
	return e.buf.Cancel()
}

// Active reports whether a word is in flight.
func (e *Engine) Active() bool { return e.buf.Active() }

// Preview returns the current rendering of the in-flight word.
func (e *Engine) Preview() string { return e.buf.Rendered() }

// RawWord returns the raw keystrokes of the in-flight word, case preserved.
func (e *Engine) RawWord() string { return e.buf.RawString() }

// LastWord reports the most recently finalized word. The second return is
// false until the first boundary.
func (e *Engine) LastWord() (WordResult, bool) { return e.last, e.hasLast }

// SetAutoCorrectMode switches the correction table from its stored integer
// code. Takes effect from the next finalized word.
func (e *Engine) SetAutoCorrectMode(code int) {
	e.ac.SetMode(autocorrect.ModeFromInt(code))
}

// AutoCorrectMode returns the active correction mode name.
func (e *Engine) AutoCorrectMode() string { return e.ac.Mode().String() }

// TryCorrect runs a single word through the active correction table without
// touching the in-flight state.
func (e *Engine) TryCorrect(word string) (autocorrect.Result, bool) {
	return e.ac.TryCorrect(word)
}

// finalize runs the word-boundary pipeline: classify, maybe restore, maybe
// correct, then emit one instruction covering the word change plus tail.
func (e *Engine) finalize(tail string) EditInstruction {
	if !e.buf.Active() {
		return EditInstruction{Insert: tail}
	}
	a := e.buf.Snapshot()
	final := a.Rendered
	restored := false
	if !e.noRestore && e.cls.Classify(a) == restore.Restore {
		final = a.Raw
		restored = true
	}
	corrected := false
	if res, ok := e.ac.TryCorrect(final); ok {
		final = res.Corrected
		corrected = true
	}
	e.last = WordResult{
		Raw:       a.Raw,
		Rendered:  a.Rendered,
		Final:     final,
		Restored:  restored,
		Corrected: corrected,
	}
	e.hasLast = true
	e.buf.Reset()

	shown, want := []rune(a.Rendered), []rune(final)
	p := 0
	for p < len(shown) && p < len(want) && shown[p] == want[p] {
		p++
	}
	return EditInstruction{Delete: len(shown) - p, Insert: string(want[p:]) + tail}
}

// ComposeString runs an entire keystroke sequence through a fresh word
// buffer and returns the resulting text. Break characters finalize words
// exactly as OnKey does.
func (e *Engine) ComposeString(keys string) string {
	out := []rune{}
	apply := func(ins EditInstruction) {
		out = out[:len(out)-ins.Delete]
		out = append(out, []rune(ins.Insert)...)
	}
	e.buf.Reset()
	for _, r := range keys {
		apply(e.OnKey(r))
	}
	apply(e.Flush())
	return string(out)
}
