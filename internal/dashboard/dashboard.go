// Package dashboard assembles the five chart sections of each report mode
// from the aggregators' derived tables.
package dashboard

import (
	"time"

	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
)

const monthsPerYear = 12

// Report mode identifiers, as used by the report selector.
const (
	ModePerformance = "performance"
	ModeDelay       = "delay"
)

// ModeLabel returns the selector label for a report mode.
func ModeLabel(mode string) string {
	switch mode {
	case ModePerformance:
		return "Yearly Airline Performance Report"
	case ModeDelay:
		return "Yearly Airline Delay Report"
	default:
		return mode
	}
}

// ValidMode reports whether mode names a known report.
func ValidMode(mode string) bool {
	return mode == ModePerformance || mode == ModeDelay
}

// Builder turns derived report tables into themed chart sections.
type Builder struct {
	copts *plotpage.ChartOpts
}

// New creates a Builder for the given theme.
func New(theme plotpage.Theme) *Builder {
	return &Builder{copts: plotpage.NewChartOpts(theme)}
}

// ExtraScripts returns additional chart assets a report mode needs beyond the
// echarts runtime.
func ExtraScripts(mode string) []string {
	if mode == ModePerformance {
		// The choropleth needs the USA region geometry.
		return []string{plotpage.USAMapAsset}
	}

	return nil
}

// monthLabels returns the twelve calendar month abbreviations.
func monthLabels() []string {
	labels := make([]string, monthsPerYear)

	for i := range labels {
		labels[i] = time.Month(i + 1).String()[:3]
	}

	return labels
}

// monthSeries is a per-month value vector with nil gaps for months that have
// no group in the derived table.
type monthSeries []plotpage.SeriesData

func newMonthSeries() monthSeries {
	return make(monthSeries, monthsPerYear)
}

func (s monthSeries) set(month int, value float64) {
	if month < 1 || month > monthsPerYear {
		return
	}

	s[month-1] = value
}
