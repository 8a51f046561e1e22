package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding/charmap"
)

// Compressed input extensions recognized by Load.
const (
	extLZ4  = ".lz4"
	extGzip = ".gz"
)

// Source column names.
const (
	colYear               = "Year"
	colMonth              = "Month"
	colReportingAirline   = "Reporting_Airline"
	colTailNum            = "TailNum"
	colOrigin             = "Origin"
	colDest               = "Dest"
	colOriginState        = "OriginState"
	colDestState          = "DestState"
	colCancellationCode   = "CancellationCode"
	colAirTime            = "AirTime"
	colFlights            = "Flights"
	colDivAirportLandings = "DivAirportLandings"
	colDiv1Airport        = "Div1Airport"
	colDiv1TailNum        = "Div1TailNum"
	colDiv2Airport        = "Div2Airport"
	colDiv2TailNum        = "Div2TailNum"
	colCarrierDelay       = "CarrierDelay"
	colWeatherDelay       = "WeatherDelay"
	colNASDelay           = "NASDelay"
	colSecurityDelay      = "SecurityDelay"
	colLateAircraftDelay  = "LateAircraftDelay"
)

// requiredColumns must be present in the header for the reports to be
// computable. The opaque identifier columns are optional.
var requiredColumns = []string{
	colYear, colMonth, colReportingAirline,
	colOriginState, colDestState,
	colCancellationCode, colAirTime, colFlights, colDivAirportLandings,
	colCarrierDelay, colWeatherDelay, colNASDelay, colSecurityDelay,
	colLateAircraftDelay,
}

// ErrMissingColumn indicates the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// LoadError describes a failure to read the dataset. It is fatal at startup:
// without the dataset no request can be served.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a delimited flat file with a header row into a Table. The file
// is decoded as ISO 8859-1, matching the published reporting extracts, and is
// transparently decompressed when the path ends in .lz4 or .gz. Malformed
// numeric cells become nulls; a missing file, unreadable stream, or absent
// required column returns a *LoadError.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := Read(decompressed(path, f))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return table, nil
}

// Read parses flight records from r. See Load for the parsing contract.
func Read(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []FlightRecord

	for {
		cells, readErr := csvReader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("read row: %w", readErr)
		}

		rows = append(rows, parseRecord(cells, cols))
	}

	return NewTable(rows), nil
}

func decompressed(path string, f io.Reader) io.Reader {
	switch {
	case strings.HasSuffix(path, extLZ4):
		return lz4.NewReader(f)
	case strings.HasSuffix(path, extGzip):
		gz, err := gzip.NewReader(f)
		if err != nil {
			// Let the CSV reader surface the stream error.
			return errReader{err}
		}

		return gz
	default:
		return f
	}
}

// errReader yields a stored error on every read.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// columnIndex maps column names to header positions; -1 means absent.
type columnIndex map[string]int

func resolveColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))

	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return cols, nil
}

func (c columnIndex) text(cells []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[i])
}

func (c columnIndex) intVal(cells []string, name string) int {
	// Some extracts serialize integral columns as floats ("3.0").
	v, err := strconv.ParseFloat(c.text(cells, name), 64)
	if err != nil {
		return 0
	}

	return int(v)
}

func (c columnIndex) floatVal(cells []string, name string) float64 {
	v, err := strconv.ParseFloat(c.text(cells, name), 64)
	if err != nil {
		return 0
	}

	return v
}

func (c columnIndex) nullFloat(cells []string, name string) NullFloat {
	v, err := strconv.ParseFloat(c.text(cells, name), 64)
	if err != nil {
		return NullFloat{}
	}

	return Float(v)
}

func parseRecord(cells []string, cols columnIndex) FlightRecord {
	return FlightRecord{
		Year:             cols.intVal(cells, colYear),
		Month:            cols.intVal(cells, colMonth),
		ReportingAirline: cols.text(cells, colReportingAirline),
		TailNum:          cols.text(cells, colTailNum),
		Origin:           cols.text(cells, colOrigin),
		Dest:             cols.text(cells, colDest),
		OriginState:      cols.text(cells, colOriginState),
		DestState:        cols.text(cells, colDestState),
		CancellationCode: cols.text(cells, colCancellationCode),

		AirTime: cols.nullFloat(cells, colAirTime),
		Flights: cols.floatVal(cells, colFlights),

		DivAirportLandings: cols.intVal(cells, colDivAirportLandings),
		Div1Airport:        cols.text(cells, colDiv1Airport),
		Div1TailNum:        cols.text(cells, colDiv1TailNum),
		Div2Airport:        cols.text(cells, colDiv2Airport),
		Div2TailNum:        cols.text(cells, colDiv2TailNum),

		CarrierDelay:      cols.nullFloat(cells, colCarrierDelay),
		WeatherDelay:      cols.nullFloat(cells, colWeatherDelay),
		NASDelay:          cols.nullFloat(cells, colNASDelay),
		SecurityDelay:     cols.nullFloat(cells, colSecurityDelay),
		LateAircraftDelay: cols.nullFloat(cells, colLateAircraftDelay),
	}
}
