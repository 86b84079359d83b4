package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui"
)

var tuiWatch bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The TUI provides a search box over the indexed corpus with live results,
matched section anchors, and keyboard navigation.

Controls:
  ↑/↓      - Navigate results
  Enter    - Search
  Esc      - Clear / Quit
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the index when the corpus changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	// Panic recovery to get stack traces out of bubbletea.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if tuiWatch {
		stop, err := watchCorpus(cmd.Context())
		if err != nil {
			return fmt.Errorf("starting corpus watcher: %w", err)
		}
		defer stop()
	}

	ports := &tui.Ports{
		Search:  searchService,
		Filters: filterService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
