package report

import (
	"sort"

	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
)

// monthAirlineKey groups rows by calendar month and reporting airline.
type monthAirlineKey struct {
	Month   int
	Airline string
}

// meanAcc accumulates a null-aware mean: absent cells contribute to neither
// the numerator nor the denominator.
type meanAcc struct {
	Sum   float64
	Count int
}

func (a meanAcc) mean() float64 {
	return a.Sum / float64(a.Count)
}

// Performance computes the five derived tables of the yearly performance
// dashboard from year-filtered rows. Empty input yields empty tables.
func Performance(rows []dataset.FlightRecord) *PerformanceReport {
	return &PerformanceReport{
		Cancellations: monthlyCancellations(rows),
		AirTime:       monthlyAirTime(rows),
		Diverted:      divertedRows(rows),
		OriginFlights: flightsByOriginState(rows),
		DestFlights:   flightsByDestStateAirline(rows),
	}
}

// monthlyCancellations sums flights per (Month, CancellationCode). Rows
// without a cancellation code are not cancellations and carry no group key.
func monthlyCancellations(rows []dataset.FlightRecord) []CancellationRow {
	type key struct {
		Month int
		Code  string
	}

	sums := make(map[key]float64)

	for _, row := range rows {
		if row.CancellationCode == "" {
			continue
		}

		sums[key{Month: row.Month, Code: row.CancellationCode}] += row.Flights
	}

	out := make([]CancellationRow, 0, len(sums))
	for k, flights := range sums {
		out = append(out, CancellationRow{Month: k.Month, Code: k.Code, Flights: flights})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}

		return out[i].Code < out[j].Code
	})

	return out
}

// monthlyAirTime averages air time per (Month, Airline), skipping rows whose
// air time is absent.
func monthlyAirTime(rows []dataset.FlightRecord) []AirTimeRow {
	accs := make(map[monthAirlineKey]meanAcc)

	for _, row := range rows {
		if !row.AirTime.Valid {
			continue
		}

		k := monthAirlineKey{Month: row.Month, Airline: row.ReportingAirline}
		acc := accs[k]
		acc.Sum += row.AirTime.Float64
		acc.Count++
		accs[k] = acc
	}

	out := make([]AirTimeRow, 0, len(accs))
	for k, acc := range accs {
		out = append(out, AirTimeRow{Month: k.Month, Airline: k.Airline, AvgAirTime: acc.mean()})
	}

	sortByMonthAirline(out, func(r AirTimeRow) (int, string) { return r.Month, r.Airline })

	return out
}

// divertedRows filters the rows with at least one diversion landing. An
// absent landing count loads as zero and therefore counts as non-diverted.
func divertedRows(rows []dataset.FlightRecord) []dataset.FlightRecord {
	var diverted []dataset.FlightRecord

	for _, row := range rows {
		if row.Diverted() {
			diverted = append(diverted, row)
		}
	}

	return diverted
}

func flightsByOriginState(rows []dataset.FlightRecord) []StateFlightsRow {
	sums := make(map[string]float64)

	for _, row := range rows {
		sums[row.OriginState] += row.Flights
	}

	out := make([]StateFlightsRow, 0, len(sums))
	for state, flights := range sums {
		out = append(out, StateFlightsRow{State: state, Flights: flights})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })

	return out
}

func flightsByDestStateAirline(rows []dataset.FlightRecord) []StateAirlineRow {
	type key struct {
		State   string
		Airline string
	}

	sums := make(map[key]float64)

	for _, row := range rows {
		sums[key{State: row.DestState, Airline: row.ReportingAirline}] += row.Flights
	}

	out := make([]StateAirlineRow, 0, len(sums))
	for k, flights := range sums {
		out = append(out, StateAirlineRow{State: k.State, Airline: k.Airline, Flights: flights})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}

		return out[i].Airline < out[j].Airline
	})

	return out
}

// sortByMonthAirline orders rows by (Month, Airline) so repeated runs over
// identical input produce identical tables.
func sortByMonthAirline[T any](rows []T, key func(T) (int, string)) {
	sort.Slice(rows, func(i, j int) bool {
		mi, ai := key(rows[i])
		mj, aj := key(rows[j])

		if mi != mj {
			return mi < mj
		}

		return ai < aj
	})
}
