// Package main provides the interactive globesync demo: a 2D map layer
// stack on the left, the imagery stack it is mirrored onto on the
// right, and keybindings to edit the map side live. An optional
// argument names a YAML stack file (see internal/stack).
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"globesync/internal/tui"
)

func main() {
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(os.Args[1])
	} else {
		m = tui.New()
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
