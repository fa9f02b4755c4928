package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose [keystrokes]...",
	Short: "Compose Telex keystrokes into Vietnamese text",
	Long: `Compose runs a keystroke sequence through the input engine and prints
the resulting text. Each argument is a word; spaces between arguments
act as word breaks. Without arguments, lines are read from stdin.

Example:
  vikey compose tooi dduwowcj
  vikey compose "xin chaof cacs banj"
  echo "vieetj nam" | vikey compose`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(loadSettings())
	if err != nil {
		return err
	}

	if len(args) > 0 {
		fmt.Println(eng.ComposeString(strings.Join(args, " ")))
		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(eng.ComposeString(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
