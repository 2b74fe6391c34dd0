package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the preview
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:      "night",
		Primary:   lipgloss.Color("#ffd700"), // Gold markers
		Secondary: lipgloss.Color("#ffffff"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemePurples = Theme{
		Name:      "purples",
		Primary:   lipgloss.Color("#9e9ac8"),
		Secondary: lipgloss.Color("#3f007d"),
		Accent:    lipgloss.Color("#dadaeb"),
		Text:      lipgloss.Color("#fcfbfd"),
		Muted:     lipgloss.Color("#6a51a3"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	Themes = []Theme{
		ThemeNight,
		ThemePurples,
		ThemeOcean,
	}
)

// chartThemes picks the theme closest to each chart's page colors.
var chartThemes = map[string]string{
	"flow":        "night",
	"heart":       "purples",
	"interactive": "ocean",
	"star":        "night",
}

// GetTheme returns a theme by name, falling back to night.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

func ThemeFor(chartName string) Theme {
	return GetTheme(chartThemes[chartName])
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(current string) Theme {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return GetTheme(names[(i+1)%len(names)])
		}
	}
	return Themes[0]
}
