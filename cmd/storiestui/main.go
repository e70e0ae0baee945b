package main

import (
	"fmt"
	"os"

	"hackerstories/config"
	"hackerstories/models"
	"hackerstories/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; only errors may be logged
	logger.SetLogLevel("error")

	model := tui.New(models.SeedStories(), models.NewSearchState(cfg.Search.Default))
	if _, err := tea.NewProgram(model).Run(); err != nil {
		logger.LogErr(err, "terminal UI failed")
		os.Exit(1)
	}
}
