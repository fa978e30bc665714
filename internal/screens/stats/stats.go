// Package stats implements the statistics screen: games played, win
// percentage, and the guess distribution.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitha/wordrow/internal/record"
	"github.com/ankitha/wordrow/internal/router"
	"github.com/ankitha/wordrow/internal/screen"
	"github.com/ankitha/wordrow/internal/stats"
	"github.com/ankitha/wordrow/internal/ui/components"
	"github.com/ankitha/wordrow/internal/ui/layout"
	"github.com/ankitha/wordrow/internal/ui/theme"
)

type summaryLoadedMsg struct {
	Summary stats.Summary
}

// StatsScreen displays the persisted statistics.
type StatsScreen struct {
	recordPath string
	summary    stats.Summary
	loaded     bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen reading from the record file at path.
func New(recordPath string) *StatsScreen {
	return &StatsScreen{recordPath: recordPath}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		// Load falls back to a fresh record on corruption; the stats
		// screen shows whatever survives.
		rec, _ := record.Load(s.recordPath)
		return summaryLoadedMsg{Summary: stats.Summarize(rec)}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.summary = msg.Summary
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading statistics...")
	}
	if s.summary.Played == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games played yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	headline := fmt.Sprintf("Played %d   Won %d   Win rate %.0f%%",
		s.summary.Played, s.summary.Wins, s.summary.WinPct)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(headline)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Guess distribution")))
	b.WriteString("\n\n")

	max := 0
	for _, n := range s.summary.Distribution {
		if n > max {
			max = n
		}
	}

	barWidth := width / 2
	if barWidth < 24 {
		barWidth = 24
	}
	for i, n := range s.summary.Distribution {
		bar := components.NewBar(
			fmt.Sprintf("%d", i+1), n, max, barWidth,
			s.summary.LastAttempts == i+1,
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}
