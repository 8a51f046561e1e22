package plotpage

import "github.com/go-echarts/go-echarts/v2/opts"

// Default chart dimensions.
const (
	chartWidth  = "100%"
	chartHeight = "460px"
)

// ChartOpts provides themed option blocks shared by all chart builders.
type ChartOpts struct {
	theme ThemeConfig
	name  Theme
}

// NewChartOpts creates chart options for the given theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{theme: GetThemeConfig(theme), name: theme}
}

// Palette returns the series color cycle for the active theme.
func (c *ChartOpts) Palette() []string {
	return SeriesPalette(c.name)
}

// SeriesColor returns the palette color for series index i, wrapping around.
func (c *ChartOpts) SeriesColor(i int) string {
	palette := c.Palette()

	return palette[i%len(palette)]
}

// Init returns initialization options with the default dashboard dimensions.
func (c *ChartOpts) Init() opts.Initialization {
	return opts.Initialization{
		Width:           chartWidth,
		Height:          chartHeight,
		BackgroundColor: "transparent",
	}
}

// Tooltip returns tooltip options with the given trigger ("axis" or "item").
func (c *ChartOpts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

// Legend returns scrollable legend options with themed text.
func (c *ChartOpts) Legend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Type:      "scroll",
		Top:       "0",
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: c.theme.TextMuted},
	}
}

// XAxis returns x-axis options with themed colors.
func (c *ChartOpts) XAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.TextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
	}
}

// YAxis returns y-axis options with themed colors and grid lines.
func (c *ChartOpts) YAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.TextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// TextColor returns the primary chart text color.
func (c *ChartOpts) TextColor() string {
	return c.theme.ChartText
}

// TextMutedColor returns the muted chart text color.
func (c *ChartOpts) TextMutedColor() string {
	return c.theme.TextMuted
}
