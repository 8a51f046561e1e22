package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCommand_ProducesHTMLFiles(t *testing.T) {
	t.Parallel()

	dataPath := writeTestDataset(t)
	outputDir := filepath.Join(t.TempDir(), "html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{dataPath, "--output", outputDir})

	err := cmd.Execute()
	require.NoError(t, err)

	// Both report modes for both years present in the dataset.
	for _, name := range []string{
		"performance-2010.html",
		"performance-2012.html",
		"delay-2010.html",
		"delay-2012.html",
	} {
		pageData, readErr := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, readErr, "page %s should exist", name)
		require.Contains(t, string(pageData), "echarts.min.js")
	}
}

func TestRenderCommand_IndexLinksToAllPages(t *testing.T) {
	t.Parallel()

	dataPath := writeTestDataset(t)
	outputDir := filepath.Join(t.TempDir(), "html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{dataPath, "--output", outputDir})

	err := cmd.Execute()
	require.NoError(t, err)

	indexData, readErr := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, readErr)

	indexHTML := string(indexData)
	require.Contains(t, indexHTML, "performance-2010.html")
	require.Contains(t, indexHTML, "delay-2012.html")
}

func TestRenderCommand_SingleSelection(t *testing.T) {
	t.Parallel()

	dataPath := writeTestDataset(t)
	outputDir := filepath.Join(t.TempDir(), "html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{dataPath, "--output", outputDir, "--report", "delay", "--year", "2010"})

	err := cmd.Execute()
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(outputDir, "delay-2010.html"))
	require.NoError(t, statErr)

	_, statErr = os.Stat(filepath.Join(outputDir, "performance-2010.html"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRenderCommand_MissingOutputFlag(t *testing.T) {
	t.Parallel()

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{writeTestDataset(t)})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrNoOutputDir)
}

func TestRenderCommand_UnknownSelections(t *testing.T) {
	t.Parallel()

	dataPath := writeTestDataset(t)

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{dataPath, "--output", t.TempDir(), "--report", "weekly"})
	require.ErrorIs(t, cmd.Execute(), ErrUnknownReport)

	cmd = NewRenderCommand()
	cmd.SetArgs([]string{dataPath, "--output", t.TempDir(), "--year", "1999"})
	require.ErrorIs(t, cmd.Execute(), ErrUnknownYear)
}

func TestRenderCommand_MissingDataFile(t *testing.T) {
	t.Parallel()

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{"/nonexistent/flights.csv", "--output", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
}
