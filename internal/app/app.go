package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/nav"
	"github.com/atomicstack/tabshell/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
	// InitialWidth and InitialHeight size the first frame when Width/Height
	// are unset. Later window size messages replace them.
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	Verbose       bool
	RetainState   bool
	Reselect      string
	Tabs          []nav.Tab
}

// NewModel builds the navigator described by cfg and the UI model around it.
func NewModel(cfg Config) (*ui.Model, error) {
	tabs := cfg.Tabs
	if len(tabs) == 0 {
		tabs = nav.DefaultTabs()
	}
	policy, err := nav.ParseReselectPolicy(cfg.Reselect)
	if err != nil {
		return nil, err
	}
	navigator, err := nav.New(tabs, nav.Options{RetainState: cfg.RetainState, Reselect: policy})
	if err != nil {
		return nil, fmt.Errorf("build tabs: %w", err)
	}
	model := ui.NewModel(navigator, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	if cfg.InitialWidth > 0 || cfg.InitialHeight > 0 {
		model.SetInitialSize(cfg.InitialWidth, cfg.InitialHeight)
	}
	return model, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(model.ActiveTabID(), err)
	return err
}
