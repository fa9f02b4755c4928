package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndtrung/vikey/internal/engine"
	"github.com/ndtrung/vikey/internal/restore"
	"github.com/ndtrung/vikey/internal/telex"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <keystrokes>...",
	Short: "Show how a keystroke sequence decomposes",
	Long: `Analyze feeds each argument through the engine as one word and prints
the rendering, the syllable split and the keep/restore verdict.

Example:
  vikey analyze vieetj test muwowjt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cls := restore.New()

	for _, word := range args {
		buf := engine.New()
		for _, r := range word {
			if telex.IsBreak(r) {
				continue
			}
			buf.ProcessKey(r)
		}
		a := buf.Snapshot()

		fmt.Printf("Keys:     %s\n", a.Raw)
		fmt.Printf("Rendered: %s\n", a.Rendered)
		fmt.Printf("Split:    initial=%q nucleus=%q final=%q anchor=%d\n",
			a.Syllable.Initial, a.Syllable.Nucleus, a.Syllable.Final, a.Syllable.Anchor)
		fmt.Printf("Valid:    %v\n", a.Valid)
		fmt.Printf("Verdict:  %s\n\n", cls.Classify(a))
	}
	return nil
}
