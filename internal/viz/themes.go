package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the canvas and the side panel.
type Theme struct {
	Name      string
	Canvas    lipgloss.Color
	Title     lipgloss.Color
	TitleEnd  lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
	Hint      lipgloss.Color
	Border    lipgloss.Color
	Running   lipgloss.Color
	Paused    lipgloss.Color
	Recording lipgloss.Color
}

var Themes = []Theme{
	{
		Name:      "cyberpunk",
		Canvas:    "#00ffff",
		Title:     "#ff00ff",
		TitleEnd:  "#00ffff",
		Label:     "#888899",
		Value:     "#ffffff",
		Hint:      "#666688",
		Border:    "#444466",
		Running:   "#00ff88",
		Paused:    "#ffaa00",
		Recording: "#ff4444",
	},
	{
		Name:      "retro",
		Canvas:    "#00ff00",
		Title:     "#88ff88",
		TitleEnd:  "#00cc00",
		Label:     "#005500",
		Value:     "#00ff00",
		Hint:      "#007700",
		Border:    "#004400",
		Running:   "#88ff88",
		Paused:    "#ffff00",
		Recording: "#ff0000",
	},
	{
		Name:      "minimal",
		Canvas:    "#ffffff",
		Title:     "#ffffff",
		TitleEnd:  "#888888",
		Label:     "#888888",
		Value:     "#ffffff",
		Hint:      "#666666",
		Border:    "#444444",
		Running:   "#00ff00",
		Paused:    "#ffaa00",
		Recording: "#ff0000",
	},
	{
		Name:      "ocean",
		Canvas:    "#00a8cc",
		Title:     "#0077be",
		TitleEnd:  "#ffd700",
		Label:     "#4488aa",
		Value:     "#e0f0ff",
		Hint:      "#336688",
		Border:    "#224466",
		Running:   "#00ff88",
		Paused:    "#ffcc00",
		Recording: "#ff4444",
	},
	{
		Name:      "sunset",
		Canvas:    "#feca57",
		Title:     "#ff6b6b",
		TitleEnd:  "#ff9ff3",
		Label:     "#8b6b8c",
		Value:     "#fff5f5",
		Hint:      "#6b4b6c",
		Border:    "#4b2b4c",
		Running:   "#5fd068",
		Paused:    "#ffc048",
		Recording: "#ff4757",
	},
}

// ThemeIndex returns the position of the named theme, or 0 if unknown.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
