package plotpage

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templates     *template.Template
	templatesOnce sync.Once
	errTemplates  error
)

// getTemplates returns the parsed templates, loading them once.
func getTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		var parseErr error

		templates, parseErr = template.New("").ParseFS(templateFS, "templates/*.html")
		if parseErr != nil {
			errTemplates = fmt.Errorf("parsing templates: %w", parseErr)
		}
	})

	return templates, errTemplates
}

// renderTemplate renders a named template with the given data.
func renderTemplate(name string, data any) (template.HTML, error) {
	tmpl, err := getTemplates()
	if err != nil {
		return "", fmt.Errorf("loading templates: %w", err)
	}

	var buf bytes.Buffer

	err = tmpl.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return template.HTML(buf.String()), nil
}

// pageData holds data for the page template.
type pageData struct {
	Title       string
	ProjectName string
	Theme       ThemeConfig
	Header      template.HTML
	Controls    template.HTML
	Notice      string
	Content     template.HTML
	Scripts     []string
}

// headerData holds data for the header template.
type headerData struct {
	ProjectName string
	Title       string
	Description string
}

// sectionData holds data for the section template.
type sectionData struct {
	Title    string
	Subtitle string
	Chart    template.HTML
}

// IndexCard is one navigation card on a static report index.
type IndexCard struct {
	Href        string
	Title       string
	Description string
}

// RenderIndexContent renders navigation cards for a static report index.
func RenderIndexContent(cards []IndexCard) (template.HTML, error) {
	html, err := renderTemplate("index.html", struct{ Cards []IndexCard }{Cards: cards})
	if err != nil {
		return "", fmt.Errorf("render index content: %w", err)
	}

	return html, nil
}

// RawHTML is a Renderable that writes pre-rendered HTML, used to place
// non-chart content into a section slot.
type RawHTML template.HTML

// Render writes the raw HTML content.
func (r RawHTML) Render(w io.Writer) error {
	_, err := w.Write([]byte(r))
	if err != nil {
		return fmt.Errorf("write raw html: %w", err)
	}

	return nil
}
