package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
)

const (
	statsCmdUse      = "stats <data-file>"
	statsCmdShort    = "Summarize a flight records dataset"
	statsArgCount    = 1
	statsNoColorFlag = "no-color"
	statsNoColorUse  = "disable colored output"
)

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   statsCmdUse,
		Short: statsCmdShort,
		Args:  cobra.ExactArgs(statsArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runStats(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVar(&noColor, statsNoColorFlag, false, statsNoColorUse)

	return cmd
}

// yearStats accumulates the per-year summary counters.
type yearStats struct {
	records   int
	flights   float64
	cancelled int
	diverted  int
	airlines  map[string]bool
}

func runStats(out io.Writer, dataPath string) error {
	tbl, err := dataset.Load(dataPath)
	if err != nil {
		return err
	}

	perYear := summarize(tbl)

	fmt.Fprintln(out, color.New(color.FgCyan, color.Bold).Sprintf("Dataset: %s", dataPath))
	fmt.Fprintf(out, "Records: %s\n\n", humanize.Comma(int64(tbl.Len())))

	writeStatsTable(out, perYear)

	return nil
}

func summarize(tbl *dataset.Table) map[int]*yearStats {
	perYear := make(map[int]*yearStats)

	for _, row := range tbl.Rows() {
		stats := perYear[row.Year]
		if stats == nil {
			stats = &yearStats{airlines: make(map[string]bool)}
			perYear[row.Year] = stats
		}

		stats.records++
		stats.flights += row.Flights
		stats.airlines[row.ReportingAirline] = true

		if row.CancellationCode != "" {
			stats.cancelled++
		}

		if row.Diverted() {
			stats.diverted++
		}
	}

	return perYear
}

func writeStatsTable(out io.Writer, perYear map[int]*yearStats) {
	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}

	sort.Ints(years)

	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.SetStyle(table.StyleLight)
	writer.AppendHeader(table.Row{"Year", "Records", "Flights", "Cancelled", "Diverted", "Airlines"})

	var totals yearStats

	totalAirlines := make(map[string]bool)

	for _, y := range years {
		stats := perYear[y]
		writer.AppendRow(table.Row{
			y,
			humanize.Comma(int64(stats.records)),
			humanize.Comma(int64(stats.flights)),
			humanize.Comma(int64(stats.cancelled)),
			humanize.Comma(int64(stats.diverted)),
			len(stats.airlines),
		})

		totals.records += stats.records
		totals.flights += stats.flights
		totals.cancelled += stats.cancelled
		totals.diverted += stats.diverted

		for airline := range stats.airlines {
			totalAirlines[airline] = true
		}
	}

	writer.AppendFooter(table.Row{
		"Total",
		humanize.Comma(int64(totals.records)),
		humanize.Comma(int64(totals.flights)),
		humanize.Comma(int64(totals.cancelled)),
		humanize.Comma(int64(totals.diverted)),
		len(totalAirlines),
	})

	writer.Render()
}
