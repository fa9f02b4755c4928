package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/ndtrung/vikey"
	"github.com/ndtrung/vikey/internal/clipboard"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the Bubble Tea model for the typing playground. It owns the
// committed text and feeds every keystroke through the input engine.
type Model struct {
	eng  *vikey.Engine
	text []rune
	mode int

	copied bool

	width  int
	height int
	ready  bool
}

// New creates a playground around an input engine. mode is the stored
// autocorrect code the engine was configured with.
func New(eng *vikey.Engine, mode int) Model {
	return Model{eng: eng, mode: mode}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			if m.eng.Active() {
				m.apply(m.eng.Cancel())
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyF2:
			m.mode = (m.mode + 1) % 4
			m.eng.SetAutoCorrectMode(m.mode)
			return m, nil

		case tea.KeyEnter:
			m.apply(m.eng.OnKey('\n'))
			return m, nil

		case tea.KeyBackspace:
			if m.eng.Active() || len(m.text) > 0 {
				m.apply(m.eng.Backspace())
			}
			return m, nil

		case tea.KeySpace:
			m.apply(m.eng.OnKey(' '))
			return m, nil

		case tea.KeyCtrlY:
			m.apply(m.eng.Flush())
			if err := clipboard.Write(string(m.text)); err == nil {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil

		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.apply(m.eng.OnKey(r))
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

// apply replays one edit instruction onto the committed text.
func (m *Model) apply(ins vikey.EditInstruction) {
	if ins.Delete > len(m.text) {
		ins.Delete = len(m.text)
	}
	m.text = m.text[:len(m.text)-ins.Delete]
	m.text = append(m.text, []rune(ins.Insert)...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("  vikey  ") + "  " +
		subtitleStyle.Render("Vietnamese Telex Playground")
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(m.renderText())
	b.WriteString("\n")

	if m.eng.Active() {
		b.WriteString(m.renderWord())
		b.WriteString("\n")
	} else if last, ok := m.eng.LastWord(); ok {
		b.WriteString(m.renderLast(last))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Correct:"))
	b.WriteString(modeStyle.Render(m.eng.AutoCorrectMode()))
	if m.copied {
		b.WriteString("  " + copiedStyle.Render("Copied!"))
	}
	b.WriteString("\n\n")

	help := []string{"type to compose", "esc: revert word", "f2: autocorrect", "ctrl+y: copy", "ctrl+c: quit"}
	b.WriteString(helpStyle.Render("  " + strings.Join(help, " • ")))

	return b.String()
}

// renderText draws the committed text box with a block cursor.
func (m Model) renderText() string {
	width := 70
	if m.ready && m.width-6 < width {
		width = m.width - 6
	}
	content := composedStyle.Render(lastLines(string(m.text), width, 8)) +
		cursorStyle.Render(" ")
	return textBoxStyle.Width(width).Render(content)
}

// renderWord draws the in-flight word: raw keystrokes on one side, the
// current rendering on the other.
func (m Model) renderWord() string {
	raw := m.eng.RawWord()
	preview := m.eng.Preview()
	style := validStyle
	if raw == preview {
		style = invalidStyle
	}
	line := fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("Keys:"), valueStyle.Render(raw),
		labelStyle.Render("Word:"), style.Render(preview),
	)
	return wordBoxStyle.Render(line)
}

// renderLast shows what happened to the previous word at its boundary.
func (m Model) renderLast(last vikey.WordResult) string {
	verdict := validStyle.Render("kept")
	switch {
	case last.Restored && last.Corrected:
		verdict = invalidStyle.Render("restored, corrected")
	case last.Restored:
		verdict = invalidStyle.Render("restored")
	case last.Corrected:
		verdict = invalidStyle.Render("corrected")
	}
	line := fmt.Sprintf("%s %s  %s %s  (%s)",
		labelStyle.Render("Keys:"), valueStyle.Render(last.Raw),
		labelStyle.Render("Word:"), valueStyle.Render(last.Final),
		verdict,
	)
	return wordBoxStyle.Render(line)
}

// lastLines wraps s to width and keeps only the trailing max lines, so the
// box never outgrows the terminal.
func lastLines(s string, width, max int) string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	if len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	return strings.Join(lines, "\n")
}

func wrapLine(s string, width int) []string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var cur strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			lines = append(lines, cur.String())
			cur.Reset()
			w = 0
		}
		cur.WriteRune(r)
		w += rw
	}
	return append(lines, cur.String())
}
