// Package layout renders the fixed chrome around each screen: the header
// bar, the key-hint footer, and the too-small fallback.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ankitha/wordrow/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the whole terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}

// bar wraps one line of content in the bordered card used by both the
// header and the footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the app name on the left, the screen title centered,
// and the puzzle day on the right.
func RenderHeader(appName, title string, day int, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render("  " + appName)
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	num := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("day %d", day))

	inner := max(0, width-4) // border padding
	pre := max(1, (inner-lipgloss.Width(mid))/2-lipgloss.Width(name))
	post := max(1, inner-lipgloss.Width(name)-pre-lipgloss.Width(mid)-lipgloss.Width(num))

	return bar(name+strings.Repeat(" ", pre)+mid+strings.Repeat(" ", post)+num, width)
}

// RenderFooter draws the key hints for the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer, stretching the content
// block to fill the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
