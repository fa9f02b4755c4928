// Package autocorrect replaces finished words against fixed correction
// tables. Lookup is case-insensitive and the replacement mirrors the case
// shape of the original (ALL CAPS, Title, lower).
package autocorrect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects which correction table is active.
type Mode int

const (
	ModeOff Mode = iota
	ModeVietnamese
	ModeEnglish
	ModeAll
)

// ModeFromInt maps a stored integer to a Mode. Unknown values fall back to
// ModeOff so a stale config can never activate the wrong table.
func ModeFromInt(v int) Mode {
	switch v {
	case 1:
		return ModeVietnamese
	case 2:
		return ModeEnglish
	case 3:
		return ModeAll
	default:
		return ModeOff
	}
}

func (m Mode) String() string {
	switch m {
	case ModeVietnamese:
		return "vietnamese"
	case ModeEnglish:
		return "english"
	case ModeAll:
		return "all"
	default:
		return "off"
	}
}

// Result describes one applied correction. Backspace counts characters of
// the original word, so the host can erase it before inserting the fix.
type Result struct {
	Original  string
	Corrected string
	Backspace int
}

// Engine holds the active table. The table is built eagerly at SetMode so
// per-word lookup is a single map access. Not safe for concurrent use.
type Engine struct {
	mode  Mode
	table map[string]string
	extra map[string]string
}

// New returns an engine with correction disabled.
func New() *Engine {
	return &Engine{mode: ModeOff}
}

// SetMode switches the active table, rebuilding it immediately.
func (e *Engine) SetMode(m Mode) {
	e.mode = m
	switch m {
	case ModeVietnamese:
		e.table = buildVietnamese()
	case ModeEnglish:
		e.table = buildEnglish()
	case ModeAll:
		e.table = buildAll()
	default:
		e.table = nil
	}
	for wrong, right := range e.extra {
		if e.table != nil {
			e.table[wrong] = right
		}
	}
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// AddCorrections merges user-supplied pairs on top of every built-in table.
// User entries win over built-ins on key collision.
func (e *Engine) AddCorrections(pairs map[string]string) {
	if e.extra == nil {
		e.extra = make(map[string]string, len(pairs))
	}
	for wrong, right := range pairs {
		w := strings.ToLower(wrong)
		if w == "" || w == strings.ToLower(right) {
			continue
		}
		e.extra[w] = right
		if e.table != nil {
			e.table[w] = right
		}
	}
}

// TryCorrect looks word up in the active table. The second return is false
// when the mode is off or the word is unknown.
func (e *Engine) TryCorrect(word string) (Result, bool) {
	if e.mode == ModeOff || word == "" {
		return Result{}, false
	}
	right, ok := e.table[strings.ToLower(word)]
	if !ok {
		return Result{}, false
	}
	return Result{
		Original:  word,
		Corrected: applyCase(word, right),
		Backspace: utf8.RuneCountInString(word),
	}, true
}

// Count reports the size of the active table. Off mode counts zero.
func (e *Engine) Count() int { return len(e.table) }

// applyCase shapes the replacement after the original: all upper stays all
// upper, a leading capital carries over, anything else is used verbatim.
func applyCase(original, replacement string) string {
	rs := []rune(original)
	upper, hasLetter := true, false
	for _, r := range rs {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				upper = false
				break
			}
		}
	}
	if hasLetter && upper && len(rs) > 1 {
		return strings.ToUpper(replacement)
	}
	if len(rs) > 0 && unicode.IsUpper(rs[0]) {
		out := []rune(replacement)
		if len(out) > 0 {
			out[0] = unicode.ToUpper(out[0])
		}
		return string(out)
	}
	return replacement
}
