package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testHeader = "Year,Month,Reporting_Airline,TailNum,Origin,Dest," +
	"OriginState,DestState,CancellationCode,AirTime,Flights,DivAirportLandings," +
	"Div1Airport,Div1TailNum,Div2Airport,Div2TailNum," +
	"CarrierDelay,WeatherDelay,NASDelay,SecurityDelay,LateAircraftDelay"

const testRows = testHeader + "\n" +
	"2010,1,AA,N100AA,JFK,LAX,NY,CA,,330,1,0,,,,,15,0,5,0,10\n" +
	"2010,2,DL,N200DL,ATL,DFW,GA,TX,A,,1,1,DFW,N200DL,,,,,,,\n" +
	"2012,6,UA,N300UA,ORD,SFO,IL,CA,,255,1,0,,,,,,,,,\n"

// writeTestDataset writes a small parseable dataset and returns its path.
func writeTestDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flights.csv")
	require.NoError(t, os.WriteFile(path, []byte(testRows), 0o600))

	return path
}
