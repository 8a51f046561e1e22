package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

func withCarrierDelay(minutes float64) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.CarrierDelay = dataset.Float(minutes) }
}

func withWeatherDelay(minutes float64) func(*dataset.FlightRecord) {
	return func(r *dataset.FlightRecord) { r.WeatherDelay = dataset.Float(minutes) }
}

func TestDelay_MeanIsNullAware(t *testing.T) {
	t.Parallel()

	// The row without a carrier delay must not pull the mean toward zero:
	// mean(30, 60) = 45, not mean(30, 60, 0) = 30.
	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withCarrierDelay(30)),
		flight(1, testAirlineAA, withCarrierDelay(60)),
		flight(1, testAirlineAA),
	}

	rep := report.Delay(rows)

	require.Len(t, rep.Carrier, 1)
	assert.InDelta(t, 45.0, rep.Carrier[0].AvgDelay, 1e-9)
}

func TestDelay_AllNullCauseYieldsEmptyTable(t *testing.T) {
	t.Parallel()

	// No row carries a weather delay: the weather table has no rows at all,
	// not rows of zeros.
	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withCarrierDelay(10)),
		flight(2, testAirlineDL, withCarrierDelay(20)),
	}

	rep := report.Delay(rows)

	assert.Empty(t, rep.Weather)
	assert.Len(t, rep.Carrier, 2)
}

func TestDelay_GroupsByMonthAndAirline(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(1, testAirlineAA, withWeatherDelay(10)),
		flight(1, testAirlineDL, withWeatherDelay(20)),
		flight(2, testAirlineAA, withWeatherDelay(30)),
	}

	rep := report.Delay(rows)

	require.Len(t, rep.Weather, 3)
	assert.Equal(t, report.DelayRow{Month: 1, Airline: testAirlineAA, AvgDelay: 10}, rep.Weather[0])
	assert.Equal(t, report.DelayRow{Month: 1, Airline: testAirlineDL, AvgDelay: 20}, rep.Weather[1])
	assert.Equal(t, report.DelayRow{Month: 2, Airline: testAirlineAA, AvgDelay: 30}, rep.Weather[2])
}

func TestDelay_DeterministicAndIdempotent(t *testing.T) {
	t.Parallel()

	rows := []dataset.FlightRecord{
		flight(4, testAirlineDL, withCarrierDelay(12), withWeatherDelay(3)),
		flight(2, testAirlineAA, withCarrierDelay(7)),
		flight(4, testAirlineAA, withWeatherDelay(9)),
	}

	first := report.Delay(rows)
	second := report.Delay(rows)

	assert.Equal(t, first, second)
}

func TestDelay_EmptyInputYieldsEmptyTables(t *testing.T) {
	t.Parallel()

	rep := report.Delay(nil)

	for _, cause := range report.Causes() {
		assert.Empty(t, rep.ByCause(cause))
	}
}

func TestDelayReport_ByCause(t *testing.T) {
	t.Parallel()

	rep := report.Delay([]dataset.FlightRecord{
		flight(1, testAirlineAA, withCarrierDelay(5)),
	})

	assert.Equal(t, rep.Carrier, rep.ByCause(report.CauseCarrier))
	assert.Nil(t, rep.ByCause(report.DelayCause("unknown")))
}
