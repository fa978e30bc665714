// Package home implements the main menu screen.
package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/router"
	"github.com/ankitha/wordrow/internal/screen"
	gamescreen "github.com/ankitha/wordrow/internal/screens/game"
	historyscreen "github.com/ankitha/wordrow/internal/screens/history"
	statsscreen "github.com/ankitha/wordrow/internal/screens/stats"
	"github.com/ankitha/wordrow/internal/ui/components"
	"github.com/ankitha/wordrow/internal/ui/theme"
	"github.com/ankitha/wordrow/internal/words"
)

var banner = []string{
	`▌ ▌▞▀▖▛▀▖▛▀▖▛▀▖▞▀▖▌  ▌`,
	`▌▖▌▌ ▌▙▄▘▌ ▌▙▄▘▌ ▌▌▖▌`,
	`▙▚▌▌ ▌▌▚ ▌ ▌▌▚ ▌ ▌▙▚▌`,
	`▘ ▘▝▀ ▘ ▘▀▀ ▘ ▘▝▀ ▘ ▘`,
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	name string
	menu components.Menu
	day  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the rest of the app. hist may
// be nil when the archive database could not be opened.
func New(name string, sel *puzzle.Selector, list *words.List, recordPath string, hist *history.Store, log zerolog.Logger) *HomeScreen {
	day, _ := sel.DayIndex(time.Now())

	items := []components.MenuItem{
		{Label: "PLAY TODAY'S PUZZLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: gamescreen.New(name, sel, list, recordPath, hist, log),
				}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(recordPath)}
			}
		}},
		{Label: "HISTORY", Disabled: hist == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(hist)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		name: name,
		menu: components.NewMenu(items),
		day:  day,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true).
		Render(strings.Join(banner, "\n"))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, title))

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("One word a day. Six tries.")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, tagline))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
