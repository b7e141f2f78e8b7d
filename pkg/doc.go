// Package pkg provides the core libraries for Folio, a one-page portfolio
// site builder.
//
// # Overview
//
// Folio turns a profile (name, highlights, community experience, tech stack
// and contact links) into a single static page. The only dynamic input is
// the build date, which sets the footer copyright year.
//
// # Architecture
//
// The data flow through Folio:
//
//	profile.Default() or profile.Load(path)
//	         ↓
//	    [page] package (compose the document tree)
//	         ↓
//	    [page/sink] package (HTML, JSON, Markdown)
//	         ↓
//	    public/index.html, page.json, page.md
//
// # Quick Start
//
//	import (
//	    "time"
//	    "github.com/induwarauthsara/folio/pkg/page"
//	    "github.com/induwarauthsara/folio/pkg/page/sink"
//	    "github.com/induwarauthsara/folio/pkg/profile"
//	)
//
//	doc := page.Compose(profile.Default(), time.Now())
//	html, _ := sink.RenderHTML(doc, sink.WithInlineCSS())
//
// # Main Packages
//
// [profile] - The record collections behind the page and their invariants.
// Profiles load from TOML, YAML or JSON files.
//
// [page] - Pure composition of a profile into a document: header and hero,
// the work, community, tech and connect sections, and the footer.
//
// [page/sink] - Output formats. HTML uses an embedded template and
// stylesheet; Markdown is derived from the HTML.
//
// [pipeline] - Load → compose → render with caching, used by every CLI
// command so builds behave the same everywhere.
//
// [cache] - File, Redis and null caches with TTLs and key derivation.
//
// [observability] - Hooks for pipeline, cache and HTTP events, with a
// Prometheus implementation in [observability/metrics].
//
// [errors] - Coded errors and input validators.
//
// [buildinfo] - Version information set at link time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis tests
//
// [profile]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/profile
// [page]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/page
// [page/sink]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/page/sink
// [pipeline]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/cache
// [observability]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/observability
// [observability/metrics]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/observability/metrics
// [errors]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/induwarauthsara/folio/pkg/buildinfo
package pkg
