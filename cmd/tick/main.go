package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hylgeir/tick/internal/logging"
	"github.com/hylgeir/tick/internal/todo"
	"github.com/hylgeir/tick/internal/tui"
)

func main() {
	filterFlag := flag.String("filter", "all", "initial filter: all, active or completed")
	debugFlag := flag.String("debug", "", "append debug logs to this file")
	seedFlag := flag.Bool("seed", false, "preload a few sample items")
	flag.Parse()

	filter, err := todo.ParseFilter(*filterFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tick:", err)
		os.Exit(2)
	}

	logger := logging.Discard()
	if *debugFlag != "" {
		fileLogger, closeLog, err := logging.File(*debugFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tick:", err)
			os.Exit(1)
		}
		defer closeLog()
		logger = fileLogger
	}

	store := todo.NewStore()
	if *seedFlag {
		seed(store)
	}

	p := tea.NewProgram(tui.New(store, filter, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tick:", err)
		os.Exit(1)
	}
}

// seed preloads sample items; like everything else they live only
// until the process exits.
func seed(s *todo.Store) {
	titles := []string{
		"Water the plants",
		"Reply to Sam",
		"Book dentist appointment",
		"Buy milk",
	}
	var last todo.Todo
	for _, title := range titles {
		t, err := s.Create(title)
		if err != nil {
			continue
		}
		last = t
	}
	if last.ID != "" {
		s.ToggleCompleted(last.ID)
	}
}
