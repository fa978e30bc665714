// Package history implements the archive browser: one line per finished
// puzzle, filterable by solution.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/router"
	"github.com/ankitha/wordrow/internal/screen"
	"github.com/ankitha/wordrow/internal/ui/components"
	"github.com/ankitha/wordrow/internal/ui/layout"
	"github.com/ankitha/wordrow/internal/ui/theme"
)

const loadLimit = 200

type historyLoadedMsg struct {
	Results []history.Result
	Err     error
}

// HistoryScreen displays past puzzle results.
type HistoryScreen struct {
	store    *history.Store
	results  []history.Result
	filter   components.TextInput
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *history.Store) *HistoryScreen {
	return &HistoryScreen{
		store:  store,
		filter: components.NewTextInput("Filter by word...", true, 5),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			results, err := s.store.Recent(context.Background(), loadLimit)
			if err != nil {
				return historyLoadedMsg{Err: err}
			}
			return historyLoadedMsg{Results: results}
		},
		s.filter.Init(),
	)
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Type", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.selected >= len(s.visible()) {
		s.selected = 0
	}
	return s, cmd
}

// visible returns the results that match the current filter.
func (s *HistoryScreen) visible() []history.Result {
	q := strings.ToUpper(strings.TrimSpace(s.filter.Value()))
	if q == "" {
		return s.results
	}
	var out []history.Result
	for _, r := range s.results {
		if strings.Contains(strings.ToUpper(r.Solution), q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished puzzles yet. Play one!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.filter.View()))
	b.WriteString("\n\n")

	visible := s.visible()
	if len(visible) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No matches."))
		return b.String()
	}

	for i, r := range visible {
		outcome := fmt.Sprintf("won %d/6", r.Attempts)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !r.Won {
			outcome = "lost x/6"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Highlight).Bold(true)
		}

		line := fmt.Sprintf("%s#%-5d %s  %s  %s", prefix, r.DayIndex, r.Date, r.Solution, outcome)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
