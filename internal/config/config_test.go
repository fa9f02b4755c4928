package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.AutoCorrectMode)
	assert.Empty(t, s.AllowWords)
	assert.True(t, s.RestoreEnabled())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	off := false
	in := &Settings{
		AutoCorrectMode: 2,
		AllowWords:      []string{"eos", "uor"},
		CorrectionsFile: "/tmp/corrections.yaml",
		AutoRestore:     &off,
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.AutoCorrectMode, out.AutoCorrectMode)
	assert.Equal(t, in.AllowWords, out.AllowWords)
	assert.Equal(t, in.CorrectionsFile, out.CorrectionsFile)
	assert.False(t, out.RestoreEnabled())
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("autocorrect_mode: [not an int"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadCorrections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.yaml")
	doc := "corrections:\n  btw: by the way\n  thks: thanks\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	pairs, err := LoadCorrections(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"btw": "by the way", "thks": "thanks"}, pairs)

	_, err = LoadCorrections(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
