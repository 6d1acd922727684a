// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskline/internal/core/task"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the named palette and whether it exists.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// active is the palette used by the style accessors below.
var active = themes[DefaultTheme]

// SetTheme replaces the active palette.
func SetTheme(p Palette) {
	active = p
}

// StatusStyle returns the style for rendering a task status cell.
func StatusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusDone:
		return lipgloss.NewStyle().Foreground(active.Success)
	case task.StatusInProgress:
		return lipgloss.NewStyle().Foreground(active.Warning)
	default:
		return lipgloss.NewStyle().Foreground(active.Muted)
	}
}
