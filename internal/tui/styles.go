// Package tui provides an interactive typing playground for vikey.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - title, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, labels
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - composed text
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - valid syllable
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	textBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2).
			Margin(1, 0)

	composedStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	validStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	modeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			Padding(0, 1)

	wordBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
