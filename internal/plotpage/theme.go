package plotpage

// Theme selects a page color theme.
type Theme string

const (
	// ThemeLight is the light color theme and the default.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ParseTheme maps a config value to a Theme, defaulting to light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}

	return ThemeLight
}

// ThemeConfig holds theme-specific styling values used by the page templates
// and chart options.
type ThemeConfig struct {
	Background string
	Surface    string
	Border     string

	TextPrimary string
	TextMuted   string

	// Accent is the heading color. The light value matches the original
	// dashboard's brown title.
	Accent string

	ChartGrid string
	ChartAxis string
	ChartText string
}

// GetThemeConfig returns the configuration for a given theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background:  "#fafafa",
	Surface:     "#ffffff",
	Border:      "#e0e0e0",
	TextPrimary: "#262626",
	TextMuted:   "#6b6b6b",
	Accent:      "#503d36",
	ChartGrid:   "#e7e5e4",
	ChartAxis:   "#a8a29e",
	ChartText:   "#44403c",
}

var darkTheme = ThemeConfig{
	Background:  "#151413",
	Surface:     "#211f1e",
	Border:      "#44403c",
	TextPrimary: "#fafaf9",
	TextMuted:   "#a8a29e",
	Accent:      "#d4a373",
	ChartGrid:   "#44403c",
	ChartAxis:   "#57534e",
	ChartText:   "#d6d3d1",
}

// SeriesPalette returns the color cycle for multi-series charts. Series
// beyond the palette wrap around.
func SeriesPalette(theme Theme) []string {
	if theme == ThemeDark {
		return darkSeriesPalette
	}

	return lightSeriesPalette
}

var lightSeriesPalette = []string{
	"#0369a1", // sky-700.
	"#c2410c", // orange-700.
	"#15803d", // green-700.
	"#7c3aed", // violet-600.
	"#be185d", // pink-700.
	"#0891b2", // cyan-600.
	"#a16207", // amber-700.
	"#4338ca", // indigo-700.
	"#b91c1c", // red-700.
	"#4d7c0f", // lime-700.
}

var darkSeriesPalette = []string{
	"#38bdf8", // sky-400.
	"#fb923c", // orange-400.
	"#4ade80", // green-400.
	"#a78bfa", // violet-400.
	"#f472b6", // pink-400.
	"#22d3ee", // cyan-400.
	"#fbbf24", // amber-400.
	"#818cf8", // indigo-400.
	"#f87171", // red-400.
	"#a3e635", // lime-400.
}

// SequentialScale returns a low-to-high color ramp for value-mapped charts
// such as the origin-state choropleth (green-blue, matching the original's
// GnBu scale).
func SequentialScale() []string {
	return []string{"#f7fcf0", "#ccebc5", "#7bccc4", "#2b8cbe", "#084081"}
}
