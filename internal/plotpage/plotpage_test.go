package plotpage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
)

func sampleBar() plotpage.Renderable {
	return plotpage.BuildBarChart(
		plotpage.NewChartOpts(plotpage.ThemeLight),
		[]string{"Jan", "Feb"},
		[]plotpage.BarSeries{{Name: "A", Data: []plotpage.SeriesData{1, 2}}},
		"Flights",
	)
}

func renderPage(t *testing.T, page *plotpage.Page) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	return buf.String()
}

func TestPage_RenderEmbedsChartFragment(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Test Report", "test description")
	page.Add(plotpage.Section{Title: "Monthly flights", Chart: sampleBar()})

	html := renderPage(t, page)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "US Domestic Airline Flights Performance")
	assert.Contains(t, html, "Test Report")
	assert.Contains(t, html, "Monthly flights")
	assert.Contains(t, html, "echarts.min.js")
	// The chart is embedded as a fragment, not a nested document.
	assert.Contains(t, html, "echart-box")
	assert.Equal(t, 1, strings.Count(html, "<!DOCTYPE html>"))
}

func TestPage_ControlsAndNotice(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("", "")
	page.Notice = "Select a report type."
	page.Controls = &plotpage.Controls{
		Action:  "/",
		Reports: []plotpage.SelectOption{{Value: "performance", Label: "Performance", Selected: true}},
		Years:   []plotpage.SelectOption{{Value: "2010", Label: "2010"}},
	}

	html := renderPage(t, page)

	assert.Contains(t, html, "Select a report type.")
	assert.Contains(t, html, `value="performance" selected`)
	assert.Contains(t, html, `value="2010"`)
	assert.Contains(t, html, `action="/"`)
}

func TestPage_ExtraScriptsIncluded(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("", "")
	page.ExtraScripts = []string{plotpage.USAMapAsset}

	html := renderPage(t, page)

	assert.Contains(t, html, "maps/USA.js")
}

func TestPage_DarkThemeColors(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("", "")
	page.Theme = plotpage.ThemeDark

	html := renderPage(t, page)

	dark := plotpage.GetThemeConfig(plotpage.ThemeDark)
	assert.Contains(t, html, dark.Background)
}

func TestMultiPageRenderer_WritesPagesAndIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := &plotpage.MultiPageRenderer{
		OutputDir: dir,
		Title:     "Flight Reports",
		Theme:     plotpage.ThemeLight,
	}

	err := renderer.RenderReportPage("performance-2010", "Performance 2010", nil, []plotpage.Section{
		{Title: "Monthly flights", Chart: sampleBar()},
	})
	require.NoError(t, err)

	err = renderer.RenderIndex([]plotpage.IndexCard{
		{Href: "performance-2010.html", Title: "Performance 2010", Description: "Five charts"},
	})
	require.NoError(t, err)

	pageBytes, err := os.ReadFile(filepath.Join(dir, "performance-2010.html"))
	require.NoError(t, err)
	assert.Contains(t, string(pageBytes), "Monthly flights")

	indexBytes, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(indexBytes), `href="performance-2010.html"`)
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, plotpage.ThemeDark, plotpage.ParseTheme("dark"))
	assert.Equal(t, plotpage.ThemeLight, plotpage.ParseTheme("light"))
	assert.Equal(t, plotpage.ThemeLight, plotpage.ParseTheme(""))
	assert.Equal(t, plotpage.ThemeLight, plotpage.ParseTheme("sepia"))
}
