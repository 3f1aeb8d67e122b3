package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the style for an elemental phase. Phases outside the
// built-in set render in the foreground color.
func PhaseStyle(phase string) lipgloss.Style {
	switch phase {
	case lexicon.PhaseFire:
		return StyleRed
	case lexicon.PhaseEarth:
		return StyleGreen
	case lexicon.PhaseAir:
		return StyleBlue
	case lexicon.PhaseWater:
		return StylePurple
	case lexicon.PhaseAether:
		return StyleYellow
	default:
		return StyleFg
	}
}

// PhaseBadge returns a colored phase label such as "● Water".
func PhaseBadge(phase string) string {
	if phase == "" {
		return StyleDim.Render("--")
	}
	return PhaseStyle(phase).Render("● " + phase)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
