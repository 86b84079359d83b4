package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

type stubSearch struct {
	results []domain.SearchResult
	err     error
	queries []string
}

func (s *stubSearch) Search(_ context.Context, query string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func (s *stubSearch) IsReady() bool { return true }

func newTestApp(t *testing.T, search *stubSearch) *App {
	t.Helper()
	app, err := NewApp(&Ports{Search: search})
	require.NoError(t, err)

	// Simulate the initial window size message.
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(*App)
}

func TestNewApp_RequiresSearchService(t *testing.T) {
	_, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrNoSearchService)
}

func TestApp_NotReadyBeforeWindowSize(t *testing.T) {
	app, err := NewApp(&Ports{Search: &stubSearch{}})
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_EnterTriggersSearch(t *testing.T) {
	search := &stubSearch{}
	app := newTestApp(t, search)
	app.input.SetValue("streaming")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(searchCompleted)
	require.True(t, ok)
	assert.Equal(t, "streaming", completed.query)
	assert.Equal(t, []string{"streaming"}, search.queries)
}

func TestApp_EmptyQueryDoesNothing(t *testing.T) {
	search := &stubSearch{}
	app := newTestApp(t, search)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, search.queries)
}

func TestApp_SearchCompletedRendersResults(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	model, _ := app.Update(searchCompleted{
		query: "streaming",
		results: []domain.SearchResult{{
			Document:      domain.DocumentRecord{ID: "guides/streaming", Title: "Streaming"},
			CombinedScore: 13,
			Sections: []domain.MatchingSection{
				{Kind: domain.SectionTitle, Text: "Streaming", Anchor: "streaming"},
			},
		}},
	})
	app = model.(*App)

	view := app.View()
	assert.Contains(t, view, "Streaming")
	assert.Contains(t, view, "#streaming")
	assert.Contains(t, view, "1 results")
}

func TestApp_SearchErrorShown(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	model, _ := app.Update(searchCompleted{err: errors.New("index exploded")})
	app = model.(*App)

	assert.Contains(t, app.View(), "index exploded")
}

func TestApp_ArrowKeysMoveSelection(t *testing.T) {
	app := newTestApp(t, &stubSearch{})
	model, _ := app.Update(searchCompleted{
		query: "q",
		results: []domain.SearchResult{
			{Document: domain.DocumentRecord{ID: "a", Title: "A"}},
			{Document: domain.DocumentRecord{ID: "b", Title: "B"}},
		},
	})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	// Bounded at the end of the list.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)
}

func TestApp_EscClearsState(t *testing.T) {
	app := newTestApp(t, &stubSearch{})
	model, _ := app.Update(searchCompleted{
		query:   "q",
		results: []domain.SearchResult{{Document: domain.DocumentRecord{ID: "a"}}},
	})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.Empty(t, app.results)
	assert.Empty(t, app.query)
}

func TestApp_EscOnEmptyStateQuits(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
