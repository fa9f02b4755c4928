package vikey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndtrung/vikey"
)

// typeKeys replays a key sequence through the engine and applies every
// instruction to a local text buffer, the way a host would.
func typeKeys(e *vikey.Engine, keys string) string {
	var text []rune
	apply := func(ins vikey.EditInstruction) {
		text = text[:len(text)-ins.Delete]
		text = append(text, []rune(ins.Insert)...)
	}
	for _, r := range keys {
		apply(e.OnKey(r))
	}
	apply(e.Flush())
	return string(text)
}

func TestComposeString(t *testing.T) {
	e := vikey.New()
	cases := []struct{ keys, want string }{
		{"tooi dduwowcj", "tôi được"},
		{"xin chaof cacs banj", "xin chào các bạn"},
		{"vieetj nam", "việt nam"},
		{"test", "test"},
		{"the text in english", "the text in english"},
		{"toi ddi hocj", "toi đi học"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, e.ComposeString(c.keys), "keys %q", c.keys)
	}
}

func TestOnKeyWordBoundary(t *testing.T) {
	e := vikey.New()
	assert.Equal(t, "việt ", typeKeys(e, "vieetj "))

	// a word the classifier rejects reverts at the boundary
	assert.Equal(t, "test.", typeKeys(e, "test."))

	// mixed text, break characters pass through verbatim
	assert.Equal(t, "tôi dùng vim!", typeKeys(e, "tooi dungf vim!"))
}

func TestOnKeyUnchangedWordEmitsBreakOnly(t *testing.T) {
	e := vikey.New()
	for _, r := range "tooi" {
		e.OnKey(r)
	}
	ins := e.OnKey(' ')
	assert.Equal(t, vikey.EditInstruction{Delete: 0, Insert: " "}, ins)
}

func TestOnKeyRestoreInstruction(t *testing.T) {
	e := vikey.New()
	for _, r := range "test" {
		e.OnKey(r)
	}
	require.Equal(t, "tét", e.Preview())

	// boundary rewrites the shown word back to the raw keys
	ins := e.OnKey(' ')
	assert.Equal(t, vikey.EditInstruction{Delete: 2, Insert: "est "}, ins)
}

func TestBreakOnEmptyBuffer(t *testing.T) {
	e := vikey.New()
	assert.Equal(t, vikey.EditInstruction{Insert: " "}, e.OnKey(' '))
	assert.Equal(t, vikey.EditInstruction{}, e.Flush())
}

func TestCancel(t *testing.T) {
	e := vikey.New()
	for _, r := range "tooi" {
		e.OnKey(r)
	}
	ins := e.Cancel()
	assert.Equal(t, vikey.EditInstruction{Delete: 3, Insert: "tooi"}, ins)
	assert.False(t, e.Active())
}

func TestBackspace(t *testing.T) {
	e := vikey.New()
	for _, r := range "tooi" {
		e.OnKey(r)
	}
	ins := e.Backspace()
	assert.Equal(t, vikey.EditInstruction{Delete: 1, Insert: ""}, ins)
	assert.Equal(t, "tô", e.Preview())

	// with no word in flight, backspace falls through to the host text
	e.Cancel()
	assert.Equal(t, vikey.EditInstruction{Delete: 1}, e.Backspace())
}

func TestWithoutAutoRestore(t *testing.T) {
	e := vikey.New(vikey.WithoutAutoRestore())
	assert.Equal(t, "tét ", typeKeys(e, "test "))
}

func TestWithAllowList(t *testing.T) {
	plain := vikey.New()
	assert.Equal(t, "eos", typeKeys(plain, "eos"))

	custom := vikey.New(vikey.WithAllowList("eos"))
	assert.Equal(t, "éo", typeKeys(custom, "eos"))
}

func TestWithAutoCorrectMode(t *testing.T) {
	e := vikey.New(vikey.WithAutoCorrectMode(2))
	assert.Equal(t, "the ", typeKeys(e, "teh "), "restored word hits the English table")

	vi := vikey.New(vikey.WithAutoCorrectMode(1))
	assert.Equal(t, "là ", typeKeys(vi, "naf "), "composed word hits the Vietnamese table")
}

func TestSetAutoCorrectMode(t *testing.T) {
	e := vikey.New()
	assert.Equal(t, "off", e.AutoCorrectMode())
	assert.Equal(t, "teh", typeKeys(e, "teh"))

	e.SetAutoCorrectMode(3)
	assert.Equal(t, "all", e.AutoCorrectMode())
	assert.Equal(t, "the", typeKeys(e, "teh"))

	// unknown codes disable correction
	e.SetAutoCorrectMode(9)
	assert.Equal(t, "off", e.AutoCorrectMode())
}

func TestWithUserCorrections(t *testing.T) {
	e := vikey.New(
		vikey.WithAutoCorrectMode(2),
		vikey.WithUserCorrections(map[string]string{"wfh": "work from home"}),
	)
	assert.Equal(t, "work from home ", typeKeys(e, "wfh "))
}

func TestLastWord(t *testing.T) {
	e := vikey.New(vikey.WithAutoCorrectMode(2))
	_, ok := e.LastWord()
	assert.False(t, ok)

	typeKeys(e, "teh ")
	last, ok := e.LastWord()
	require.True(t, ok)
	assert.Equal(t, "teh", last.Raw)
	assert.Equal(t, "teh", last.Rendered)
	assert.Equal(t, "the", last.Final)
	assert.True(t, last.Restored)
	assert.True(t, last.Corrected)

	typeKeys(e, "tooi ")
	last, _ = e.LastWord()
	assert.Equal(t, "tôi", last.Final)
	assert.False(t, last.Restored)
	assert.False(t, last.Corrected)
}

func TestTryCorrect(t *testing.T) {
	e := vikey.New(vikey.WithAutoCorrectMode(3))
	res, ok := e.TryCorrect("Teh")
	require.True(t, ok)
	assert.Equal(t, "The", res.Corrected)
	assert.Equal(t, 3, res.Backspace)

	_, ok = e.TryCorrect("fine")
	assert.False(t, ok)
}
