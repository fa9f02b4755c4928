// Package cmd contains all CLI commands for the vikey tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ndtrung/vikey"
	"github.com/ndtrung/vikey/internal/config"
	"github.com/ndtrung/vikey/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vikey",
	Short: "Vietnamese Telex input method core",
	Long: `vikey turns Telex keystrokes into Vietnamese text.

The engine composes one word at a time (tooi -> tôi, dduwowcj -> được),
restores raw spellings for words that were never Vietnamese (test stays
test), and can fix finished words against correction tables.

Running 'vikey' without arguments launches the interactive playground.`,
	RunE: runPlayground,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/vikey)")

	rootCmd.PersistentFlags().Bool("no-restore", false, "keep every Vietnamese rendering, never auto-restore")
	viper.BindPFlag("no_restore", rootCmd.PersistentFlags().Lookup("no-restore"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("VIKEY")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads the settings file from the config directory, falling
// back to defaults when it is missing.
func loadSettings() *config.Settings {
	s, err := config.Load(filepath.Join(getConfigDir(), "settings.yaml"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: ignoring settings:", err)
		return config.Default()
	}
	return s
}

// buildEngine assembles an input engine from settings plus flags.
func buildEngine(s *config.Settings) (*vikey.Engine, error) {
	opts := []vikey.Option{
		vikey.WithAutoCorrectMode(s.AutoCorrectMode),
		vikey.WithAllowList(s.AllowWords...),
	}
	if !s.RestoreEnabled() || viper.GetBool("no_restore") {
		opts = append(opts, vikey.WithoutAutoRestore())
	}
	if s.CorrectionsFile != "" {
		pairs, err := config.LoadCorrections(s.CorrectionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading user corrections: %w", err)
		}
		opts = append(opts, vikey.WithUserCorrections(pairs))
	}
	return vikey.New(opts...), nil
}

// runPlayground launches the interactive typing playground.
func runPlayground(cmd *cobra.Command, args []string) error {
	if _, err := config.EnsureConfigDir(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: no config directory:", err)
	}

	settings := loadSettings()
	eng, err := buildEngine(settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.New(eng, settings.AutoCorrectMode),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running playground: %w", err)
	}

	return nil
}
