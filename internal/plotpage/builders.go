package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	pieRadius        = "62%"
	treemapLeafDepth = 1
	usaMapType       = "USA"
)

// SeriesData is a single numeric value in a chart series. It is any so both
// int and float64 map onto opts.BarData/opts.LineData values.
type SeriesData any

// BarSeries defines one series of a grouped or stacked bar chart.
type BarSeries struct {
	Name  string
	Data  []SeriesData
	Color string // Optional, palette color if empty.
	Stack string // Optional, stack grouping.
}

// LineSeries defines one series of a multi-series line chart.
type LineSeries struct {
	Name  string
	Data  []SeriesData
	Color string // Optional, palette color if empty.
}

// NamedValue is a labeled value for pie, map, and treemap charts.
type NamedValue struct {
	Name  string
	Value float64
}

// TreeNode is one hierarchy level of a treemap.
type TreeNode struct {
	Name     string
	Value    float64
	Children []TreeNode
}

// BuildBarChart constructs a themed go-echarts bar chart with one bar group
// per x label.
func BuildBarChart(cOpts *ChartOpts, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	bar.SetXAxis(labels)

	for i, s := range series {
		barData := make([]opts.BarData, len(s.Data))
		for j, v := range s.Data {
			barData[j] = opts.BarData{Value: v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(i)
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		}
		if s.Stack != "" {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: s.Stack}))
		}

		bar.AddSeries(s.Name, barData, seriesOpts...)
	}

	return bar
}

// BuildLineChart constructs a themed go-echarts line chart with one line per
// series.
func BuildLineChart(cOpts *ChartOpts, labels []string, series []LineSeries, yAxisLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithXAxisOpts(cOpts.XAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend()),
	)

	line.SetXAxis(labels)

	for i, s := range series {
		lineData := make([]opts.LineData, len(s.Data))
		for j, v := range s.Data {
			lineData[j] = opts.LineData{Value: v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(i)
		}

		line.AddSeries(s.Name, lineData,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
		)
	}

	return line
}

// BuildPieChart constructs a themed go-echarts pie chart showing each slice's
// share of the total.
func BuildPieChart(cOpts *ChartOpts, seriesName string, slices []NamedValue) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Type:      "scroll",
			Top:       "bottom",
			TextStyle: &opts.TextStyle{Color: cOpts.TextMutedColor()},
		}),
	)

	pieData := make([]opts.PieData, len(slices))
	for i, s := range slices {
		pieData[i] = opts.PieData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: cOpts.SeriesColor(i)},
		}
	}

	pie.AddSeries(seriesName, pieData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
				Color:     cOpts.TextMutedColor(),
			}),
			charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}),
		)

	return pie
}

// BuildTreemap constructs a themed two-level go-echarts treemap.
func BuildTreemap(cOpts *ChartOpts, seriesName string, roots []TreeNode) *charts.TreeMap {
	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
	)

	tm.AddSeries(seriesName, treemapNodes(roots), charts.WithTreeMapOpts(opts.TreeMapChart{
		Animation:      opts.Bool(true),
		Roam:           opts.Bool(true),
		LeafDepth:      treemapLeafDepth,
		ColorMappingBy: "value",
		Label:          &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		UpperLabel:     &opts.UpperLabel{Show: opts.Bool(true)},
		Levels: &[]opts.TreeMapLevel{
			{
				ItemStyle:  &opts.ItemStyle{BorderColor: "#555", BorderWidth: 2, GapWidth: 2},
				UpperLabel: &opts.UpperLabel{Show: opts.Bool(true)},
			},
			{
				ItemStyle:       &opts.ItemStyle{BorderColor: "#999", BorderWidth: 1, GapWidth: 1},
				ColorSaturation: []float32{0.3, 0.6},
			},
		},
		Left: "2%", Right: "2%", Top: "10%", Bottom: "2%",
	}))

	return tm
}

func treemapNodes(roots []TreeNode) []opts.TreeMapNode {
	nodes := make([]opts.TreeMapNode, len(roots))

	for i, root := range roots {
		nodes[i] = opts.TreeMapNode{
			Name:     root.Name,
			Value:    int(root.Value),
			Children: treemapNodes(root.Children),
		}
	}

	return nodes
}

// BuildUSAMap constructs a US-scoped choropleth: each region is colored on a
// sequential scale by its value. Region names must be full state names as
// registered by the USA map asset.
func BuildUSAMap(cOpts *ChartOpts, seriesName string, regions []NamedValue) *charts.Map {
	var maxValue float64
	for _, r := range regions {
		if r.Value > maxValue {
			maxValue = r.Value
		}
	}

	mp := charts.NewMap()
	mp.RegisterMapType(usaMapType)
	mp.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: float32(maxValue),
			InRange:   &opts.VisualMapInRange{Color: SequentialScale()},
			Orient:    "horizontal", Left: "center", Bottom: "2%",
			TextStyle: &opts.TextStyle{Color: cOpts.TextMutedColor()},
		}),
	)

	mapData := make([]opts.MapData, len(regions))
	for i, r := range regions {
		mapData[i] = opts.MapData{Name: r.Name, Value: r.Value}
	}

	mp.AddSeries(seriesName, mapData)

	return mp
}
