package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ankitha/wordrow/internal/ui/theme"
)

// Bar displays a horizontal bar with a label and count, used for the
// guess distribution in the stats panel.
type Bar struct {
	Label     string
	Count     int
	Max       int
	Width     int
	Highlight bool
}

// NewBar creates a new distribution bar. Max scales the fill; a zero
// Max renders an empty bar.
func NewBar(label string, count, max, width int, highlight bool) Bar {
	return Bar{
		Label:     label,
		Count:     count,
		Max:       max,
		Width:     width,
		Highlight: highlight,
	}
}

// View renders the bar.
func (b Bar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + " "
	}

	labelWidth := lipgloss.Width(result)
	countWidth := 5

	barWidth := b.Width - labelWidth - countWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if b.Max > 0 {
		filled = barWidth * b.Count / b.Max
	}
	if b.Count > 0 && filled < 1 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fill := theme.Absent
	if b.Highlight {
		fill = theme.Correct
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.BgCard).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %4d", b.Count))

	return result
}
