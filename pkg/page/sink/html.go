package sink

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/induwarauthsara/folio/pkg/page"
)

// Format constants for output formats.
const (
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// Formats lists the supported formats in their canonical order.
var Formats = []string{FormatHTML, FormatJSON, FormatMarkdown}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML:     true,
	FormatJSON:     true,
	FormatMarkdown: true,
}

//go:embed templates/page.html.tmpl templates/app.css
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html.tmpl"))

// Stylesheet returns the bundled stylesheet.
func Stylesheet() []byte {
	data, _ := templatesFS.ReadFile("templates/app.css")
	return data
}

// HTMLOption configures [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title      string
	lang       string
	stylesheet string
	inlineCSS  bool
	generator  string
}

// WithTitle sets the <title>. The default is "<hero name> · Portfolio".
func WithTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

// WithLang sets the lang attribute of the html element.
func WithLang(lang string) HTMLOption { return func(r *htmlRenderer) { r.lang = lang } }

// WithStylesheet sets the href of the linked stylesheet.
func WithStylesheet(href string) HTMLOption { return func(r *htmlRenderer) { r.stylesheet = href } }

// WithInlineCSS embeds the bundled stylesheet in a <style> element instead
// of linking it.
func WithInlineCSS() HTMLOption { return func(r *htmlRenderer) { r.inlineCSS = true } }

// WithGenerator sets the content of the generator meta tag.
func WithGenerator(g string) HTMLOption { return func(r *htmlRenderer) { r.generator = g } }

// htmlView is the data handed to the page template.
type htmlView struct {
	Doc        *page.Document
	Title      string
	Lang       string
	Stylesheet string
	InlineCSS  template.CSS
	Generator  string
}

// RenderHTML renders doc as a complete HTML page.
func RenderHTML(doc *page.Document, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{lang: "en"}
	for _, opt := range opts {
		opt(&r)
	}

	view := htmlView{
		Doc:        doc,
		Title:      r.title,
		Lang:       r.lang,
		Stylesheet: r.stylesheet,
		Generator:  r.generator,
	}
	if view.Title == "" {
		view.Title = doc.Header.Hero.Name + " · Portfolio"
	}
	if r.inlineCSS {
		// bundled asset, trusted
		view.InlineCSS = template.CSS(Stylesheet())
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
