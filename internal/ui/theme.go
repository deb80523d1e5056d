package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JackWReid/reckon/internal/store"
)

// Palette holds the styles for one theme.
type Palette struct {
	Title        lipgloss.Style
	Muted        lipgloss.Style
	Expression   lipgloss.Style
	Result       lipgloss.Style
	Display      lipgloss.Style
	Function     lipgloss.Style
	Constant     lipgloss.Style
	Operator     lipgloss.Style
	Error        lipgloss.Style
	Closer       lipgloss.Style // Pending closers, shown dim.
	ActiveCloser lipgloss.Style // Closers added by evaluation.
	Selected     lipgloss.Style
	Status       lipgloss.Style
}

func newPalette(fg, muted, accent, errColor, selBg lipgloss.Color) Palette {
	base := lipgloss.NewStyle().Foreground(fg)
	return Palette{
		Title:        base.Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Expression:   base,
		Result:       lipgloss.NewStyle().Foreground(accent),
		Display:      base.Bold(true),
		Function:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Constant:     lipgloss.NewStyle().Foreground(accent).Italic(true),
		Operator:     lipgloss.NewStyle().Foreground(muted).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(errColor).Bold(true),
		Closer:       lipgloss.NewStyle().Foreground(muted).Faint(true),
		ActiveCloser: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Selected:     lipgloss.NewStyle().Foreground(fg).Background(selBg),
		Status:       lipgloss.NewStyle().Reverse(true),
	}
}

var palettes = map[store.Theme]Palette{
	store.ThemeLight: newPalette("235", "245", "25", "160", "153"),
	store.ThemeDark:  newPalette("255", "242", "214", "203", "238"),
}

// PaletteFor returns the styles for theme t, falling back to light.
func PaletteFor(t store.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[store.ThemeLight]
}
