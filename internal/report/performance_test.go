package report_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

const (
	testAirlineAA = "AA"
	testAirlineDL = "DL"
	testStateNY   = "NY"
	testStateCA   = "CA"
)

func flight(month int, airline string, mutate ...func(*dataset.FlightRecord)) dataset.FlightRecord {
	rec := dataset.FlightRecord{
		Year:             2010,
		Month:            month,
		ReportingAirline: airline,
		OriginState:      testStateNY,
		DestState:        testStateCA,
		Flights:          1,
	}

	for _, m := range mutate {
		m(&rec)
	}

	return rec
}

func withCancellation(code string) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.CancellationCode = code }
}

func withFlights(n float64) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.Flights = n }
}

func withAirTime(minutes float64) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.AirTime = dataset.Float(minutes) }
}

func withDiversions(n int) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.DivAirportLandings = n }
}

func TestPerformance_CancellationSumsFlightsPerGroup(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withCancellation("A"), withFlights(1)),
		flight(1, testAirlineAA, withCancellation("A"), withFlights(2)),
	}

	rep := report.Performance(rows)

	require.Len(t, rep.Cancellations, 1)
	assert.Equal(t, report.CancellationRow{Month: 1, Code: "A", Flights: 3}, rep.Cancellations[0])
}

func TestPerformance_CancellationSkipsUncancelledRows(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA),
		flight(1, testAirlineAA, withCancellation("B")),
	}

	rep := report.Performance(rows)

	require.Len(t, rep.Cancellations, 1)
	assert.Equal(t, "B", rep.Cancellations[0].Code)
}

func TestPerformance_AirTimeMeanSkipsNulls(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withAirTime(100)),
		flight(1, testAirlineAA, withAirTime(200)),
		flight(1, testAirlineAA), // air time absent: not averaged toward zero.
	}

	rep := report.Performance(rows)

	require.Len(t, rep.AirTime, 1)
	assert.InDelta(t, 150.0, rep.AirTime[0].AvgAirTime, 1e-9)
}

func TestPerformance_DivertedIsFilterNotReduction(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA),
		flight(2, testAirlineDL, withDiversions(1)),
		flight(3, testAirlineDL, withDiversions(2)),
	}

	rep := report.Performance(rows)

	require.Len(t, rep.Diverted, 2)
	assert.Equal(t, 2, rep.Diverted[0].Month)
	assert.Equal(t, 3, rep.Diverted[1].Month)
}

func TestPerformance_SumAggregatesPreserveTotalMass(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withFlights(2)),
		flight(2, testAirlineDL, withFlights(3), func(r *dataset.FlightRecord) {
			r.OriginState = testStateCA
			r.DestState = testStateNY
		}),
		flight(2, testAirlineAA, withFlights(5)),
	}

	var sourceTotal float64
	for _, row := range rows {
		sourceTotal += row.Flights
	}

	rep := report.Performance(rows)

	var originTotal float64
	for _, row := range rep.OriginFlights {
		originTotal += row.Flights
	}

	var destTotal float64
	for _, row := range rep.DestFlights {
		destTotal += row.Flights
	}

	assert.InDelta(t, sourceTotal, originTotal, 1e-9)
	assert.InDelta(t, sourceTotal, destTotal, 1e-9)
}

func TestPerformance_GroupKeysAreUnique(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withAirTime(10)),
		flight(1, testAirlineAA, withAirTime(20)),
		flight(1, testAirlineDL, withAirTime(30)),
		flight(2, testAirlineAA, withAirTime(40)),
	}

	rep := report.Performance(rows)

	seen := make(map[string]bool)
	for _, row := range rep.AirTime {
		key := fmt.Sprintf("%d/%s", row.Month, row.Airline)
		assert.False(t, seen[key], "duplicate group key %s", key)
		seen[key] = true
	}

	require.Len(t, rep.AirTime, 3)
}

func TestPerformance_DeterministicAndIdempotent(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(3, testAirlineDL, withAirTime(75), withCancellation("C")),
		flight(1, testAirlineAA, withAirTime(50)),
		flight(2, testAirlineAA, withDiversions(1)),
	}

	first := report.Performance(rows)
	second := report.Performance(rows)

	assert.Equal(t, first, second)
}

func TestPerformance_EmptyInputYieldsEmptyTables(t *testing.T) {
	t.Parallel()

	rep := report.Performance(nil)

	assert.Empty(t, rep.Cancellations)
	assert.Empty(t, rep.AirTime)
	assert.Empty(t, rep.Diverted)
	assert.Empty(t, rep.OriginFlights)
	assert.Empty(t, rep.DestFlights)
}
