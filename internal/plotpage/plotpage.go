// Package plotpage renders themed dashboard pages around go-echarts charts.
package plotpage

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const styleTagLen = 8 // len("</style>").

// echartsAsset is the chart runtime loaded by every page. Chart fragments are
// extracted from go-echarts output, which drops the <head> script references,
// so the page template must load the runtime itself.
const echartsAsset = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// USAMapAsset registers the USA region geometry used by map charts built with
// BuildUSAMap. Pages embedding such charts must list it in ExtraScripts.
const USAMapAsset = "https://go-echarts.github.io/go-echarts-assets/assets/maps/USA.js"

// Renderable is the interface for chart components.
type Renderable interface {
	Render(w io.Writer) error
}

// Section is one chart slot on a page.
type Section struct {
	Title    string
	Subtitle string
	Chart    Renderable
}

// SelectOption is one entry of a dashboard control.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// Controls describes the report selectors shown above the charts. Selects
// resubmit the form on change, so every control change triggers exactly one
// synchronous recompute-and-render cycle.
type Controls struct {
	Action  string
	Reports []SelectOption
	Years   []SelectOption
}

// Page is a complete dashboard page.
type Page struct {
	Title       string
	Description string
	ProjectName string
	Theme       Theme

	// Controls is nil on static pages.
	Controls *Controls

	// Notice is an informational line shown instead of or above the charts,
	// e.g. the prompt while the selection is incomplete.
	Notice string

	// ExtraScripts lists additional JS assets (such as the USA map) the
	// page's charts require beyond the echarts runtime.
	ExtraScripts []string

	Sections []Section
}

// NewPage creates a page with the project defaults.
func NewPage(title, description string) *Page {
	return &Page{
		Title:       title,
		Description: description,
		ProjectName: "US Domestic Airline Flights Performance",
		Theme:       ThemeLight,
	}
}

// Add appends sections to the page.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

// Render writes the page as standalone HTML.
func (p *Page) Render(w io.Writer) error {
	theme := GetThemeConfig(p.Theme)

	header, err := renderTemplate("header.html", headerData{
		ProjectName: p.ProjectName,
		Title:       p.Title,
		Description: p.Description,
	})
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	controls, err := p.renderControls()
	if err != nil {
		return err
	}

	var sectionsHTML bytes.Buffer

	for _, section := range p.Sections {
		sectionHTML, sectionErr := renderSection(section)
		if sectionErr != nil {
			return fmt.Errorf("render section %q: %w", section.Title, sectionErr)
		}

		sectionsHTML.WriteString(string(sectionHTML))
	}

	scripts := append([]string{echartsAsset}, p.ExtraScripts...)

	html, err := renderTemplate("page.html", pageData{
		Title:       p.Title,
		ProjectName: p.ProjectName,
		Theme:       theme,
		Header:      header,
		Controls:    controls,
		Notice:      p.Notice,
		Content:     template.HTML(sectionsHTML.String()),
		Scripts:     scripts,
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	_, err = w.Write([]byte(html))
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

func (p *Page) renderControls() (template.HTML, error) {
	if p.Controls == nil {
		return "", nil
	}

	html, err := renderTemplate("controls.html", p.Controls)
	if err != nil {
		return "", fmt.Errorf("render controls: %w", err)
	}

	return html, nil
}

func renderSection(section Section) (template.HTML, error) {
	return renderTemplate("section.html", sectionData{
		Title:    section.Title,
		Subtitle: section.Subtitle,
		Chart:    template.HTML(renderChart(section.Chart)),
	})
}

func renderChart(chart Renderable) string {
	if chart == nil {
		return ""
	}

	var buf bytes.Buffer

	err := chart.Render(&buf)
	if err != nil {
		return ""
	}

	return extractChartContent(buf.String())
}

// extractChartContent pulls the chart div and its init script out of the full
// HTML document go-echarts emits, so charts embed into our own page shell.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		// Already a fragment.
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="echart-box"`)

	return removeStyleTags(content)
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			break
		}

		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			break
		}

		content = content[:i] + content[i+j+styleTagLen:]
	}

	return content
}
