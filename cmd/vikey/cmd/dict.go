package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndtrung/vikey/internal/dict"
)

var (
	dictFormat string
	dictOut    string
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Export the built-in correction tables",
	Long: `Dict exports the built-in Vietnamese and English correction tables.

YAML goes to stdout (or --out); SQLite needs an --out path and writes a
database with a single corrections(lang, wrong, right) table.

Example:
  vikey dict export
  vikey dict export --format sqlite --out corrections.db`,
}

var dictExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the correction tables as YAML or SQLite",
	RunE:  runDictExport,
}

func init() {
	dictExportCmd.Flags().StringVar(&dictFormat, "format", "yaml", "output format: yaml, sqlite")
	dictExportCmd.Flags().StringVar(&dictOut, "out", "", "output path (default stdout for yaml)")
	dictCmd.AddCommand(dictExportCmd)
	rootCmd.AddCommand(dictCmd)
}

func runDictExport(cmd *cobra.Command, args []string) error {
	switch dictFormat {
	case "yaml":
		w := os.Stdout
		if dictOut != "" {
			f, err := os.Create(dictOut)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}
		return dict.ExportYAML(w)

	case "sqlite":
		if dictOut == "" {
			return fmt.Errorf("sqlite export needs --out")
		}
		if err := dict.ExportSQLite(dictOut); err != nil {
			return err
		}
		fmt.Printf("Wrote %d corrections to %s\n", len(dict.Entries()), dictOut)
		return nil
	}
	return fmt.Errorf("unknown format %q", dictFormat)
}
