// Package report computes the derived tables behind the yearly performance
// and delay dashboards. Both aggregators are pure functions of the
// year-filtered rows: no internal state, and identical input yields identical
// output. Group keys are unique in every table and key combinations with no
// source rows do not appear.
package report

import "github.com/EladdadMahdi/Data-visualization/internal/dataset"

// CancellationRow is one (Month, CancellationCode) group with summed flights.
type CancellationRow struct {
	Month   int
	Code    string
	Flights float64
}

// AirTimeRow is one (Month, Airline) group with the mean air time in minutes.
type AirTimeRow struct {
	Month      int
	Airline    string
	AvgAirTime float64
}

// StateFlightsRow is one origin-state group with summed flights.
type StateFlightsRow struct {
	State   string
	Flights float64
}

// StateAirlineRow is one (DestState, Airline) group with summed flights.
type StateAirlineRow struct {
	State   string
	Airline string
	Flights float64
}

// DelayRow is one (Month, Airline) group with the mean delay in minutes for a
// single cause.
type DelayRow struct {
	Month    int
	Airline  string
	AvgDelay float64
}

// PerformanceReport holds the five derived tables of the yearly performance
// dashboard. Tables are ephemeral: recomputed per request and discarded once
// rendered.
type PerformanceReport struct {
	Cancellations []CancellationRow
	AirTime       []AirTimeRow

	// Diverted is a row filter, not a reduction: the original records with at
	// least one diversion landing, unaggregated.
	Diverted []dataset.FlightRecord

	OriginFlights []StateFlightsRow
	DestFlights   []StateAirlineRow
}

// DelayCause identifies one of the five delay attribution columns.
type DelayCause string

// Delay causes in fixed dashboard slot order.
const (
	CauseCarrier      DelayCause = "carrier"
	CauseWeather      DelayCause = "weather"
	CauseNAS          DelayCause = "nas"
	CauseSecurity     DelayCause = "security"
	CauseLateAircraft DelayCause = "late_aircraft"
)

// Causes returns the five delay causes in dashboard slot order.
func Causes() []DelayCause {
	return []DelayCause{CauseCarrier, CauseWeather, CauseNAS, CauseSecurity, CauseLateAircraft}
}

// DelayReport holds one (Month, Airline) mean-delay table per cause.
type DelayReport struct {
	Carrier      []DelayRow
	Weather      []DelayRow
	NAS          []DelayRow
	Security     []DelayRow
	LateAircraft []DelayRow
}

// ByCause returns the table for the given cause, nil for an unknown cause.
func (r *DelayReport) ByCause(cause DelayCause) []DelayRow {
	switch cause {
	case CauseCarrier:
		return r.Carrier
	case CauseWeather:
		return r.Weather
	case CauseNAS:
		return r.NAS
	case CauseSecurity:
		return r.Security
	case CauseLateAircraft:
		return r.LateAircraft
	default:
		return nil
	}
}
