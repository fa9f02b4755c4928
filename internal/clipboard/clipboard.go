// Package clipboard copies text to the system clipboard by shelling out to
// the platform tool.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

// command picks the copy tool for the current platform, or nil when none is
// installed.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input")
		}
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command("wl-copy")
		}
		return nil
	}
}

// Available reports whether a clipboard tool can be found.
func Available() bool { return command() != nil }

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	if cmd == nil {
		return exec.ErrNotFound
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
