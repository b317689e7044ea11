package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wolftimer/internal/core/session"
	"wolftimer/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUICmd,
	}
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	dir, err := appDir()
	if err != nil {
		return err
	}
	config, err := loadSessionConfig(cmd, dir)
	if err != nil {
		return err
	}

	logger.
		WithField("minutes", config.TimePerBlockMinutes).
		WithField("blocks", config.NumBlocks).
		WithField("questions", config.NumQuestionsPerBlock).
		Debug("starting terminal timer")

	model := tui.NewModel(config, session.DefaultTickInterval)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
