// Package sink serializes a composed [page.Document].
//
// # Overview
//
// A "sink" turns the document tree produced by [page.Compose] into bytes.
// This package provides:
//
//   - HTML: the portfolio page itself, rendered with html/template from an
//     embedded layout
//   - JSON: the document tree, for external tools and caching
//   - Markdown: a plain-text rendition of the page body, derived from the HTML
//
// Basic usage:
//
//	doc := page.Compose(profile.Default(), time.Now())
//	html, err := sink.RenderHTML(doc, sink.WithStylesheet("/app.css"))
//
// # HTML Options
//
//   - [WithTitle]: document <title> (defaults to "<name> · Portfolio")
//   - [WithStylesheet]: link an external stylesheet
//   - [WithInlineCSS]: embed the bundled stylesheet in a <style> element
//   - [WithGenerator]: emit a <meta name="generator"> tag
//   - [WithLang]: the <html lang> attribute (defaults to "en")
//
// The bundled stylesheet is available through [Stylesheet] so that a build
// can write it next to the page.
//
// Every repeated unit carries a stable class (highlight-card, timeline-item,
// tech-card, connect-card) and its display key in a data-key attribute.
// Outbound profile links are rendered with target="_blank" and
// rel="noopener noreferrer".
//
// [page.Document]: github.com/induwarauthsara/folio/pkg/page.Document
// [page.Compose]: github.com/induwarauthsara/folio/pkg/page.Compose
package sink
