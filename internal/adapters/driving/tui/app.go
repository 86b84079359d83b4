package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// searchCompleted is emitted when an asynchronous search finishes.
type searchCompleted struct {
	query   string
	results []domain.SearchResult
	err     error
}

// App is the root bubbletea model.
type App struct {
	ports  *Ports
	styles *Styles
	ctx    context.Context

	input    textinput.Model
	results  []domain.SearchResult
	query    string
	selected int
	offset   int

	width     int
	height    int
	ready     bool
	searching bool
	err       error
}

// NewApp creates the TUI application model.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "Search the docs..."
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	return &App{
		ports:  ports,
		styles: DefaultStyles(),
		ctx:    context.Background(),
		input:  input,
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.Width = msg.Width - 4
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		a.searching = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.query = msg.query
		a.results = msg.results
		a.selected = 0
		a.offset = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		if a.input.Value() == "" && len(a.results) == 0 {
			return a, tea.Quit
		}
		a.input.SetValue("")
		a.results = nil
		a.query = ""
		a.err = nil
		a.selected = 0
		a.offset = 0
		return a, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		return a, a.performSearch(query)

	case tea.KeyUp:
		a.moveSelection(-1)
		return a, nil

	case tea.KeyDown:
		a.moveSelection(1)
		return a, nil

	default:
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) moveSelection(delta int) {
	if len(a.results) == 0 {
		return
	}
	a.selected += delta
	if a.selected < 0 {
		a.selected = 0
	}
	if a.selected >= len(a.results) {
		a.selected = len(a.results) - 1
	}

	visible := a.visibleRows()
	if a.selected < a.offset {
		a.offset = a.selected
	}
	if a.selected >= a.offset+visible {
		a.offset = a.selected - visible + 1
	}
}

// performSearch runs a search off the event loop.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, query, domain.SearchOptions{})
		return searchCompleted{query: query, results: results, err: err}
	}
}

// visibleRows reports how many result rows fit on screen, reserving
// space for the header, input and status line.
func (a *App) visibleRows() int {
	rows := (a.height - 7) / 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var sections []string
	sections = append(sections, a.styles.Title.Render("docsearch"), "")
	sections = append(sections, a.input.View(), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.renderResults())
	sections = append(sections, "", a.renderStatus())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderResults() string {
	if a.searching {
		return a.styles.Status.Render("Searching...")
	}
	if a.query != "" && len(a.results) == 0 {
		return a.styles.Status.Render("No results for " + strconv.Quote(a.query))
	}
	if len(a.results) == 0 {
		return a.styles.Status.Render("Type a query and press Enter.")
	}

	visible := a.visibleRows()
	end := a.offset + visible
	if end > len(a.results) {
		end = len(a.results)
	}

	var lines []string
	for i := a.offset; i < end; i++ {
		result := a.results[i]
		title := result.Document.Title
		if title == "" {
			title = result.Document.ID
		}

		header := fmt.Sprintf("%d. %s", i+1, title)
		score := a.styles.Score.Render(fmt.Sprintf(" (%.2f)", result.CombinedScore))
		if i == a.selected {
			lines = append(lines, a.styles.Selected.Render(header)+score)
		} else {
			lines = append(lines, a.styles.Normal.Render(header)+score)
		}

		for _, section := range result.Sections {
			text := section.Text
			if section.Anchor != "" {
				text += "  #" + section.Anchor
			}
			lines = append(lines, a.styles.Section.Render("   "+text))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (a *App) renderStatus() string {
	var parts []string
	if a.query != "" {
		parts = append(parts, fmt.Sprintf("%d results", len(a.results)))
	}
	if !a.ports.Search.IsReady() {
		parts = append(parts, "index building")
	}
	parts = append(parts, "↑/↓ navigate · Enter search · Esc clear · Ctrl+C quit")
	return a.styles.Status.Render(strings.Join(parts, " · "))
}
