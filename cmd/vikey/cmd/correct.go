package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var correctMode string

var correctCmd = &cobra.Command{
	Use:   "correct <word>...",
	Short: "Run words through the autocorrect tables",
	Long: `Correct looks each word up in the selected correction table and prints
the replacement, or the word unchanged when no correction applies.

Example:
  vikey correct teh lếu
  vikey correct --mode vi nghành`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().StringVar(&correctMode, "mode", "all", "correction table: off, vi, en, all")
	rootCmd.AddCommand(correctCmd)
}

// modeCode maps a table name to its stored integer code.
func modeCode(name string) (int, error) {
	switch name {
	case "off":
		return 0, nil
	case "vi", "vietnamese":
		return 1, nil
	case "en", "english":
		return 2, nil
	case "all":
		return 3, nil
	}
	return 0, fmt.Errorf("unknown correction mode %q", name)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	code, err := modeCode(correctMode)
	if err != nil {
		return err
	}

	eng, err := buildEngine(loadSettings())
	if err != nil {
		return err
	}
	eng.SetAutoCorrectMode(code)

	for _, word := range args {
		if res, ok := eng.TryCorrect(word); ok {
			fmt.Printf("%s -> %s\n", res.Original, res.Corrected)
		} else {
			fmt.Println(word)
		}
	}
	return nil
}
