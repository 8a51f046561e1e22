package dashboard

import (
	"sort"

	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

// Cancellation reason codes from the reporting carrier on-time data.
var cancellationLabels = map[string]string{
	"A": "A — Carrier",
	"B": "B — Weather",
	"C": "C — National Air System",
	"D": "D — Security",
}

// PerformanceSections maps a performance report onto its five fixed chart
// slots: destination treemap, diverted-share pie, origin choropleth,
// cancellation bars, and air-time lines.
func (b *Builder) PerformanceSections(rep *report.PerformanceReport) []plotpage.Section {
	return []plotpage.Section{
		{
			Title:    "Flight count by airline to destination state",
			Subtitle: "Grouped by destination state, then by reporting airline",
			Chart:    b.destStateTreemap(rep.DestFlights),
		},
		{
			Title: "% of diverted flights by reporting airline",
			Chart: b.divertedPie(rep.Diverted),
		},
		{
			Title:    "Number of flights from origin state",
			Subtitle: "Sequential color scale, US-scoped",
			Chart:    b.originStateMap(rep.OriginFlights),
		},
		{
			Title: "Monthly flight cancellations",
			Chart: b.cancellationBars(rep.Cancellations),
		},
		{
			Title: "Average monthly flight time (minutes) by airline",
			Chart: b.airTimeLines(rep.AirTime),
		},
	}
}

func (b *Builder) destStateTreemap(rows []report.StateAirlineRow) plotpage.Renderable {
	byState := make(map[string][]plotpage.TreeNode)
	totals := make(map[string]float64)

	for _, row := range rows {
		byState[row.State] = append(byState[row.State], plotpage.TreeNode{
			Name:  row.Airline,
			Value: row.Flights,
		})
		totals[row.State] += row.Flights
	}

	roots := make([]plotpage.TreeNode, 0, len(byState))
	for state, children := range byState {
		roots = append(roots, plotpage.TreeNode{
			Name:     state,
			Value:    totals[state],
			Children: children,
		})
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].Value > roots[j].Value })

	return plotpage.BuildTreemap(b.copts, "Flights", roots)
}

func (b *Builder) divertedPie(rows []dataset.FlightRecord) plotpage.Renderable {
	sums := make(map[string]float64)

	for _, row := range rows {
		sums[row.ReportingAirline] += row.Flights
	}

	airlines := make([]string, 0, len(sums))
	for airline := range sums {
		airlines = append(airlines, airline)
	}

	sort.Strings(airlines)

	slices := make([]plotpage.NamedValue, len(airlines))
	for i, airline := range airlines {
		slices[i] = plotpage.NamedValue{Name: airline, Value: sums[airline]}
	}

	return plotpage.BuildPieChart(b.copts, "Diverted flights", slices)
}

func (b *Builder) originStateMap(rows []report.StateFlightsRow) plotpage.Renderable {
	regions := make([]plotpage.NamedValue, 0, len(rows))

	for _, row := range rows {
		regions = append(regions, plotpage.NamedValue{
			Name:  StateName(row.State),
			Value: row.Flights,
		})
	}

	return plotpage.BuildUSAMap(b.copts, "Flights", regions)
}

func (b *Builder) cancellationBars(rows []report.CancellationRow) plotpage.Renderable {
	byCode := make(map[string]monthSeries)

	for _, row := range rows {
		if _, ok := byCode[row.Code]; !ok {
			byCode[row.Code] = newMonthSeries()
		}

		byCode[row.Code].set(row.Month, row.Flights)
	}

	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	series := make([]plotpage.BarSeries, len(codes))
	for i, code := range codes {
		label := cancellationLabels[code]
		if label == "" {
			label = code
		}

		series[i] = plotpage.BarSeries{Name: label, Data: byCode[code]}
	}

	return plotpage.BuildBarChart(b.copts, monthLabels(), series, "Flights")
}

func (b *Builder) airTimeLines(rows []report.AirTimeRow) plotpage.Renderable {
	byAirline := make(map[string]monthSeries)

	for _, row := range rows {
		if _, ok := byAirline[row.Airline]; !ok {
			byAirline[row.Airline] = newMonthSeries()
		}

		byAirline[row.Airline].set(row.Month, row.AvgAirTime)
	}

	return plotpage.BuildLineChart(b.copts, monthLabels(), airlineLineSeries(byAirline), "AirTime")
}

// airlineLineSeries orders per-airline series alphabetically so legend order
// is stable across renders.
func airlineLineSeries(byAirline map[string]monthSeries) []plotpage.LineSeries {
	airlines := make([]string, 0, len(byAirline))
	for airline := range byAirline {
		airlines = append(airlines, airline)
	}

	sort.Strings(airlines)

	series := make([]plotpage.LineSeries, len(airlines))
	for i, airline := range airlines {
		series[i] = plotpage.LineSeries{Name: airline, Data: byAirline[airline]}
	}

	return series
}
