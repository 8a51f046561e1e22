package plotpage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	indexFileName    = "index.html"
	indexTitle       = "Yearly Reports"
	indexDescription = "Select a report to view its charts."
	outFilePerm      = 0o644
)

// MultiPageRenderer produces one standalone HTML file per report selection
// plus an index page of navigation cards.
type MultiPageRenderer struct {
	OutputDir string // Directory to write HTML files into.
	Title     string // Project title shown on every page.
	Theme     Theme  // ThemeLight or ThemeDark.
}

// RenderReportPage renders a report page to <OutputDir>/<id>.html.
func (r *MultiPageRenderer) RenderReportPage(id, title string, extraScripts []string, sections []Section) error {
	page := NewPage(title, "")
	page.Theme = r.Theme
	page.ProjectName = r.Title
	page.ExtraScripts = extraScripts
	page.Sections = sections

	return r.writePage(id+".html", page)
}

// RenderIndex renders the navigation index to <OutputDir>/index.html.
func (r *MultiPageRenderer) RenderIndex(cards []IndexCard) error {
	content, err := RenderIndexContent(cards)
	if err != nil {
		return err
	}

	page := NewPage(indexTitle, indexDescription)
	page.Theme = r.Theme
	page.ProjectName = r.Title
	page.Sections = []Section{{Chart: RawHTML(content)}}

	return r.writePage(indexFileName, page)
}

func (r *MultiPageRenderer) writePage(name string, page *Page) error {
	outPath := filepath.Join(r.OutputDir, name)

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outFilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	renderErr := page.Render(f)
	if renderErr != nil {
		return fmt.Errorf("render %s: %w", name, renderErr)
	}

	return nil
}
