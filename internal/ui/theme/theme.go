// Package theme holds the shared color palette and tile styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: muted dark board, classic tile colors.
var (
	Correct   = lipgloss.Color("#538D4E") // Green
	Present   = lipgloss.Color("#B59F3B") // Mustard
	Absent    = lipgloss.Color("#3A3A3A") // Charcoal
	Idle      = lipgloss.Color("#828282") // Gray
	Text      = lipgloss.Color("#F8F8F2") // Off-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Error     = lipgloss.Color("#F43F5E") // Rose
	Highlight = lipgloss.Color("#6AAA64") // Light Green
	BgCard    = lipgloss.Color("#1E1E1E") // Dark Gray
	Border    = lipgloss.Color("#3A3A3C") // Tile Border
)

var Body = lipgloss.NewStyle().Foreground(Text)

// Board tiles, one style per letter state.
var (
	TileCorrect = lipgloss.NewStyle().Background(Correct).Foreground(Text).Bold(true)
	TilePresent = lipgloss.NewStyle().Background(Present).Foreground(Text).Bold(true)
	TileAbsent  = lipgloss.NewStyle().Background(Absent).Foreground(Text)
	TileIdle    = lipgloss.NewStyle().Foreground(Text).Bold(true)
	TileEmpty   = lipgloss.NewStyle().Foreground(Idle)
)

// Keyboard keycaps. Correct/present keys reuse the tile styles.
var (
	KeyUnknown = lipgloss.NewStyle().Foreground(Text)
	KeyAbsent  = lipgloss.NewStyle().Foreground(Idle)
)
