package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	boardgame "github.com/ankitha/wordrow/internal/game"
	"github.com/ankitha/wordrow/internal/ui/components"
	"github.com/ankitha/wordrow/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.eng == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Setting up today's puzzle...")
	}

	var b strings.Builder
	b.WriteString("\n")

	board := components.Board(s.eng.Grid())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, board))
	b.WriteString("\n\n")

	keys := components.KeyboardView(s.eng.Keyboard())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, keys))
	b.WriteString("\n\n")

	b.WriteString(s.renderMessage(width))

	if s.over() {
		b.WriteString("\n\n")
		b.WriteString(s.renderCountdown(width))
	}

	return b.String()
}

func (s *GameScreen) renderMessage(width int) string {
	if s.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)

	switch {
	case s.over() && s.eng.Status() == boardgame.StatusWon:
		style = style.Foreground(theme.Highlight)
	case s.over():
		style = style.Foreground(theme.Error)
	default:
		style = style.Foreground(theme.TextDim)
	}
	return style.Render(s.message)
}

// renderCountdown shows the time remaining until the next puzzle and the
// share hint.
func (s *GameScreen) renderCountdown(width int) string {
	remaining := s.sel.NextPuzzleTime(s.now).Sub(s.now)
	if remaining < 0 {
		remaining = 0
	}
	hours := int(remaining.Hours())
	mins := int(remaining.Minutes()) % 60
	secs := int(remaining.Seconds()) % 60

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Next %s in %02d:%02d:%02d", s.name, hours, mins, secs)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press C to copy your results"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
