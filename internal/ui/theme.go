package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Panel     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Panel:     lipgloss.Color("#45475a"),
		Text:      lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#6c7086"),
		Accent:    lipgloss.Color("#cba6f7"),
		AccentAlt: lipgloss.Color("#f38ba8"),
		Border:    lipgloss.Color("#585b70"),
		Success:   lipgloss.Color("#94e2d5"),
		Warning:   lipgloss.Color("#f9e2af"),
	},
	"dracula": {
		Panel:     lipgloss.Color("#3c4053"),
		Text:      lipgloss.Color("#f8f8f2"),
		Muted:     lipgloss.Color("#6272a4"),
		Accent:    lipgloss.Color("#ff79c6"),
		AccentAlt: lipgloss.Color("#bd93f9"),
		Border:    lipgloss.Color("#44475a"),
		Success:   lipgloss.Color("#50fa7b"),
		Warning:   lipgloss.Color("#f1fa8c"),
	},
	"gruvbox": {
		Panel:     lipgloss.Color("#504945"),
		Text:      lipgloss.Color("#ebdbb2"),
		Muted:     lipgloss.Color("#a89984"),
		Accent:    lipgloss.Color("#fabd2f"),
		AccentAlt: lipgloss.Color("#d3869b"),
		Border:    lipgloss.Color("#665c54"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fe8019"),
	},
	"solarized_dark": {
		Panel:     lipgloss.Color("#0a3a45"),
		Text:      lipgloss.Color("#fdf6e3"),
		Muted:     lipgloss.Color("#93a1a1"),
		Accent:    lipgloss.Color("#b58900"),
		AccentAlt: lipgloss.Color("#268bd2"),
		Border:    lipgloss.Color("#586e75"),
		Success:   lipgloss.Color("#859900"),
		Warning:   lipgloss.Color("#cb4b16"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

// styles derived from the active palette, one per kind of dial cell.
type styles struct {
	title  lipgloss.Style
	ring   lipgloss.Style
	window lipgloss.Style
	lit    lipgloss.Style
	hidden lipgloss.Style
	center lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
}

func stylesFor(p palette) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		ring:   lipgloss.NewStyle().Foreground(p.Border),
		window: lipgloss.NewStyle().Foreground(p.Accent),
		lit:    lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		hidden: lipgloss.NewStyle().Foreground(p.Muted),
		center: lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		status: lipgloss.NewStyle().Foreground(p.Text).Background(p.Panel).Padding(0, 1),
		help:   lipgloss.NewStyle().Foreground(p.Muted),
	}
}
