package report

import "github.com/EladdadMahdi/Data-visualization/internal/dataset"

// delayField selects one delay attribution column from a record.
type delayField func(dataset.FlightRecord) dataset.NullFloat

// Delay computes one (Month, Airline) mean-delay table per cause from
// year-filtered rows. Absent delay cells are excluded from both the mean's
// numerator and denominator; a cause with no valid cells anywhere yields an
// empty table, not a table of zeros.
func Delay(rows []dataset.FlightRecord) *DelayReport {
	return &DelayReport{
		Carrier:      monthlyDelay(rows, func(r dataset.FlightRecord) dataset.NullFloat { return r.CarrierDelay }),
		Weather:      monthlyDelay(rows, func(r dataset.FlightRecord) dataset.NullFloat { return r.WeatherDelay }),
		NAS:          monthlyDelay(rows, func(r dataset.FlightRecord) dataset.NullFloat { return r.NASDelay }),
		Security:     monthlyDelay(rows, func(r dataset.FlightRecord) dataset.NullFloat { return r.SecurityDelay }),
		LateAircraft: monthlyDelay(rows, func(r dataset.FlightRecord) dataset.NullFloat { return r.LateAircraftDelay }),
	}
}

func monthlyDelay(rows []dataset.FlightRecord, field delayField) []DelayRow {
	accs := make(map[monthAirlineKey]meanAcc)

	for _, row := range rows {
		cell := field(row)
		if !cell.Valid {
			continue
		}

		k := monthAirlineKey{Month: row.Month, Airline: row.ReportingAirline}
		acc := accs[k]
		acc.Sum += cell.Float64
		acc.Count++
		accs[k] = acc
	}

	out := make([]DelayRow, 0, len(accs))
	for k, acc := range accs {
		out = append(out, DelayRow{Month: k.Month, Airline: k.Airline, AvgDelay: acc.mean()})
	}

	sortByMonthAirline(out, func(r DelayRow) (int, string) { return r.Month, r.Airline })

	return out
}
