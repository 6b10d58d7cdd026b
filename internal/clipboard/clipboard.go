// Package clipboard copies converted text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found")

// tools lists clipboard writers per OS, in order of preference.
var tools = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"windows": {{"clip"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

// command returns the first installed clipboard writer for this OS.
func command() ([]string, bool) {
	candidates, ok := tools[runtime.GOOS]
	if !ok {
		candidates = tools["linux"]
	}
	for _, argv := range candidates {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return argv, true
		}
	}
	return nil, false
}

// Write copies text to the clipboard.
func Write(text string) error {
	argv, ok := command()
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard writer is installed.
func Available() bool {
	_, ok := command()
	return ok
}
