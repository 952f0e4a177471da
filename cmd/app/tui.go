package main

import (
	"fmt"
	"io"

	"fulfillment/internal/adapters/in/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive order tracker",
	Long:  "Launch a terminal UI to browse orders, fill in stage fields and move orders through the workflow.",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(c *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal; logs go to LOG_FILE or nowhere.
	app, err := openApplication(c, io.Discard)
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(
		tui.NewModel(app.root.CreateTUIHandlers()),
		tea.WithAltScreen(),
		tea.WithContext(c.Context()),
	)

	if _, err = p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
