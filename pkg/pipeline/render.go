package pipeline

import (
	"fmt"

	"github.com/induwarauthsara/folio/pkg/errors"
	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/page/sink"
)

// Render generates output artifacts in the requested formats.
func Render(doc *page.Document, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(doc, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(doc *page.Document, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case sink.FormatHTML:
		data, err = sink.RenderHTML(doc, opts.HTMLOptions()...)
	case sink.FormatJSON:
		data, err = sink.RenderJSON(doc)
	case sink.FormatMarkdown:
		data, err = sink.RenderMarkdown(doc)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

// OutputName returns the file name a format is written to.
func OutputName(format string) string {
	if format == sink.FormatHTML {
		return "index.html"
	}
	return "page." + format
}
