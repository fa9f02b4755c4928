// Package dict exports the built-in correction tables so other tools can
// consume them, either as YAML or as a SQLite database.
package dict

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/ndtrung/vikey/internal/autocorrect"
)

// Entry is one correction pair with its source table.
type Entry struct {
	Lang  string `yaml:"lang"`
	Wrong string `yaml:"wrong"`
	Right string `yaml:"right"`
}

// Entries returns every built-in correction, Vietnamese first.
func Entries() []Entry {
	vi := autocorrect.VietnamesePairs()
	en := autocorrect.EnglishPairs()
	out := make([]Entry, 0, len(vi)+len(en))
	for _, p := range vi {
		out = append(out, Entry{Lang: "vi", Wrong: p[0], Right: p[1]})
	}
	for _, p := range en {
		out = append(out, Entry{Lang: "en", Wrong: p[0], Right: p[1]})
	}
	return out
}

// ExportYAML writes the correction tables as a YAML document.
func ExportYAML(w io.Writer) error {
	doc := struct {
		Corrections []Entry `yaml:"corrections"`
	}{Corrections: Entries()}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling corrections: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing corrections: %w", err)
	}
	return nil
}

// ExportSQLite writes the correction tables to a fresh SQLite database at
// path. An existing file is replaced.
func ExportSQLite(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// "right" is quoted: it became a reserved word with RIGHT JOIN support
	const schema = `
		CREATE TABLE corrections (
			lang    TEXT NOT NULL,
			wrong   TEXT NOT NULL,
			"right" TEXT NOT NULL,
			PRIMARY KEY (lang, wrong)
		);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO corrections (lang, wrong, "right") VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range Entries() {
		if _, err := stmt.Exec(e.Lang, e.Wrong, e.Right); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %q: %w", e.Wrong, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
