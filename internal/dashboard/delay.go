package dashboard

import (
	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

// delayTitles gives each cause its dashboard section title, in slot order.
var delayTitles = map[report.DelayCause]string{
	report.CauseCarrier:      "Average carrier delay time (minutes) by airline",
	report.CauseWeather:      "Average weather delay time (minutes) by airline",
	report.CauseNAS:          "Average NAS delay time (minutes) by airline",
	report.CauseSecurity:     "Average security delay time (minutes) by airline",
	report.CauseLateAircraft: "Average late aircraft delay time (minutes) by airline",
}

// DelaySections maps a delay report onto five line-chart slots, one per delay
// cause, keyed by month with one series per airline.
func (b *Builder) DelaySections(rep *report.DelayReport) []plotpage.Section {
	sections := make([]plotpage.Section, 0, len(report.Causes()))

	for _, cause := range report.Causes() {
		sections = append(sections, plotpage.Section{
			Title: delayTitles[cause],
			Chart: b.delayLines(rep.ByCause(cause)),
		})
	}

	return sections
}

func (b *Builder) delayLines(rows []report.DelayRow) plotpage.Renderable {
	byAirline := make(map[string]monthSeries)

	for _, row := range rows {
		if _, ok := byAirline[row.Airline]; !ok {
			byAirline[row.Airline] = newMonthSeries()
		}

		byAirline[row.Airline].set(row.Month, row.AvgDelay)
	}

	return plotpage.BuildLineChart(b.copts, monthLabels(), airlineLineSeries(byAirline), "Minutes")
}
