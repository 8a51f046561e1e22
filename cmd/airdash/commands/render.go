package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EladdadMahdi/Data-visualization/internal/dashboard"
	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

const (
	renderDirPerm      = 0o750
	renderCmdUse       = "render <data-file>"
	renderCmdShort     = "Render yearly report pages as multi-page HTML"
	renderArgCount     = 1
	renderOutputFlag   = "output"
	renderOutputShort  = "o"
	renderOutputUsage  = "output directory for HTML files"
	renderYearFlag     = "year"
	renderYearUsage    = "render a single year instead of every year in the dataset"
	renderReportFlag   = "report"
	renderReportUsage  = "render a single report type (performance or delay)"
	renderProjectTitle = "US Domestic Airline Flights Performance"
)

// ErrNoOutputDir is returned when the --output flag is not set.
var ErrNoOutputDir = errors.New("output directory is required (use --output)")

// ErrUnknownReport is returned when --report names no known report type.
var ErrUnknownReport = errors.New("unknown report type (want performance or delay)")

// ErrUnknownYear is returned when --year is outside the reporting range.
var ErrUnknownYear = errors.New("year outside the reporting range")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		outputDir string
		year      int
		mode      string
		theme     string
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.ExactArgs(renderArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			if outputDir == "" {
				return ErrNoOutputDir
			}

			return runRender(args[0], outputDir, year, mode, plotpage.ParseTheme(theme))
		},
	}

	cmd.Flags().StringVarP(&outputDir, renderOutputFlag, renderOutputShort, "", renderOutputUsage)
	cmd.Flags().IntVar(&year, renderYearFlag, 0, renderYearUsage)
	cmd.Flags().StringVar(&mode, renderReportFlag, "", renderReportUsage)
	cmd.Flags().StringVar(&theme, themeFlag, "", themeUsage)

	return cmd
}

func runRender(dataPath, outputDir string, year int, mode string, theme plotpage.Theme) error {
	modes, err := renderModes(mode)
	if err != nil {
		return err
	}

	table, loadErr := dataset.Load(dataPath)
	if loadErr != nil {
		return loadErr
	}

	years, yearErr := renderYears(table, year)
	if yearErr != nil {
		return yearErr
	}

	mkErr := os.MkdirAll(outputDir, renderDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	renderer := &plotpage.MultiPageRenderer{
		OutputDir: outputDir,
		Title:     renderProjectTitle,
		Theme:     theme,
	}

	builder := dashboard.New(theme)
	cards := make([]plotpage.IndexCard, 0, len(modes)*len(years))

	for _, m := range modes {
		for _, y := range years {
			card, pageErr := renderOnePage(renderer, builder, table, m, y)
			if pageErr != nil {
				return pageErr
			}

			cards = append(cards, card)
		}
	}

	indexErr := renderer.RenderIndex(cards)
	if indexErr != nil {
		return fmt.Errorf("render index: %w", indexErr)
	}

	return nil
}

func renderOnePage(
	renderer *plotpage.MultiPageRenderer,
	builder *dashboard.Builder,
	table *dataset.Table,
	mode string,
	year int,
) (plotpage.IndexCard, error) {
	rows := table.FilterYear(year)

	var sections []plotpage.Section
	if mode == dashboard.ModeDelay {
		sections = builder.DelaySections(report.Delay(rows))
	} else {
		sections = builder.PerformanceSections(report.Performance(rows))
	}

	id := fmt.Sprintf("%s-%d", mode, year)
	title := fmt.Sprintf("%s — %d", dashboard.ModeLabel(mode), year)

	pageErr := renderer.RenderReportPage(id, title, dashboard.ExtraScripts(mode), sections)
	if pageErr != nil {
		return plotpage.IndexCard{}, fmt.Errorf("render page %s: %w", id, pageErr)
	}

	return plotpage.IndexCard{
		Href:        id + ".html",
		Title:       title,
		Description: fmt.Sprintf("%d flights", len(rows)),
	}, nil
}

func renderModes(mode string) ([]string, error) {
	if mode == "" {
		return []string{dashboard.ModePerformance, dashboard.ModeDelay}, nil
	}

	if !dashboard.ValidMode(mode) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, mode)
	}

	return []string{mode}, nil
}

// renderYears resolves the --year selection. With no selection, only the
// years actually present in the dataset are rendered.
func renderYears(table *dataset.Table, year int) ([]int, error) {
	if year != 0 {
		if !dataset.ValidYear(year) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownYear, year)
		}

		return []int{year}, nil
	}

	seen := make(map[int]bool, dataset.MaxYear-dataset.MinYear+1)
	for _, row := range table.Rows() {
		seen[row.Year] = true
	}

	var years []int

	for _, y := range dataset.Years() {
		if seen[y] {
			years = append(years, y)
		}
	}

	return years, nil
}
