// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/ankitha/wordrow/internal/history"
	"github.com/ankitha/wordrow/internal/puzzle"
	"github.com/ankitha/wordrow/internal/router"
	"github.com/ankitha/wordrow/internal/screen"
	"github.com/ankitha/wordrow/internal/screens/home"
	"github.com/ankitha/wordrow/internal/ui/layout"
	"github.com/ankitha/wordrow/internal/words"
)

// Options carries the dependencies built by the command layer.
type Options struct {
	Name       string
	Selector   *puzzle.Selector
	List       *words.List
	RecordPath string
	History    *history.Store // nil disables the archive browser
	Logger     zerolog.Logger
}

// Model is the root Bubble Tea model: it tracks the terminal size and
// delegates everything else to the screen router.
type Model struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newModel(opts Options) Model {
	root := home.New(opts.Name, opts.Selector, opts.List, opts.RecordPath, opts.History, opts.Logger)
	return Model{opts: opts, router: router.New(root)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc backs out of nested screens; the home screen stays.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	day, _ := m.opts.Selector.DayIndex(time.Now())
	header := layout.RenderHeader(m.opts.Name, title, day, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	inner := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, inner)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// hints asks the active screen for footer hints, falling back to the
// stock navigation set.
func (m Model) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the program in the alternate screen and blocks until exit.
func Run(opts Options) error {
	_, err := tea.NewProgram(newModel(opts)).Run()
	return err
}
