package dict

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEntries(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "vi", entries[0].Lang, "Vietnamese table comes first")

	langs := map[string]int{}
	for _, e := range entries {
		langs[e.Lang]++
		assert.NotEmpty(t, e.Wrong)
		assert.NotEmpty(t, e.Right)
	}
	assert.Positive(t, langs["vi"])
	assert.Positive(t, langs["en"])
	assert.Len(t, langs, 2)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf))

	var doc struct {
		Corrections []Entry `yaml:"corrections"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Corrections, len(Entries()))
}

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrections.db")
	require.NoError(t, ExportSQLite(path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM corrections").Scan(&n))
	assert.Equal(t, len(Entries()), n)

	var right string
	require.NoError(t, db.QueryRow(
		`SELECT "right" FROM corrections WHERE lang = 'en' AND wrong = 'teh'`).Scan(&right))
	assert.Equal(t, "the", right)

	// re-export replaces the file instead of appending
	require.NoError(t, ExportSQLite(path))
}
