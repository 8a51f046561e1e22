// Package dataset loads US domestic airline flight records into an immutable
// in-memory table and provides year-scoped views over it.
package dataset

// Supported year range of the reporting dataset.
const (
	MinYear = 2005
	MaxYear = 2020
)

// Years returns the enumerated supported years in ascending order.
func Years() []int {
	years := make([]int, 0, MaxYear-MinYear+1)

	for y := MinYear; y <= MaxYear; y++ {
		years = append(years, y)
	}

	return years
}

// ValidYear reports whether year falls within the supported range.
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// NullFloat is a float64 cell that may be absent. Malformed or empty numeric
// cells load as invalid rather than failing the load.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a valid NullFloat holding v.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// FlightRecord is one row of the source dataset. Identifier columns
// (airports, tail numbers) are opaque text: some are alphanumeric or carry
// leading zeros.
type FlightRecord struct {
	Year             int
	Month            int
	ReportingAirline string
	TailNum          string
	Origin           string
	Dest             string
	OriginState      string
	DestState        string

	// CancellationCode is empty for non-cancelled flights.
	CancellationCode string

	AirTime NullFloat
	Flights float64

	// DivAirportLandings counts diversion landings; zero or absent means the
	// flight was not diverted.
	DivAirportLandings int
	Div1Airport        string
	Div1TailNum        string
	Div2Airport        string
	Div2TailNum        string

	CarrierDelay      NullFloat
	WeatherDelay      NullFloat
	NASDelay          NullFloat
	SecurityDelay     NullFloat
	LateAircraftDelay NullFloat
}

// Diverted reports whether the record had at least one diversion landing.
func (r FlightRecord) Diverted() bool {
	return r.DivAirportLandings != 0
}

// Table is the loaded dataset. It is never mutated after load, so it is safe
// to share across concurrent readers without locking.
type Table struct {
	rows []FlightRecord
}

// NewTable wraps rows in a Table. The caller must not modify rows afterwards.
func NewTable(rows []FlightRecord) *Table {
	return &Table{rows: rows}
}

// Rows returns all records in load order.
func (t *Table) Rows() []FlightRecord {
	return t.rows
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.rows)
}

// FilterYear returns the records whose Year equals year, preserving load
// order. A year with no matching rows yields an empty slice; downstream
// aggregations then legitimately produce empty derived tables.
func (t *Table) FilterYear(year int) []FlightRecord {
	var matched []FlightRecord

	for _, row := range t.rows {
		if row.Year == year {
			matched = append(matched, row)
		}
	}

	return matched
}
