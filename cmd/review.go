package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tabsplit/tabsplit/internal/bill"
	"github.com/tabsplit/tabsplit/internal/tui"
)

// runReview opens the interactive review screen for a computed bill.
func runReview(splitter *bill.Splitter) error {
	// Force TrueColor profile so styling produces ANSI codes even when
	// lipgloss would otherwise fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	model, err := tui.New(splitter)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review screen: %w", err)
	}
	return nil
}
