// Package pipeline provides the page build pipeline for folio.
//
// This package implements the complete load → compose → render pipeline
// used by the build, serve and preview commands. Centralizing it keeps
// caching, logging and validation identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the profile (built-in default or a TOML/YAML/JSON file) and validate it
//  2. Compose: Turn the profile into a page.Document for the current year
//  3. Render: Generate output in the requested formats (HTML, JSON, Markdown)
//
// Compose and render results are cached under content-addressed keys, so an
// unchanged profile skips straight to the stored artifacts.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Formats: []string{"html", "md"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/induwarauthsara/folio/pkg/buildinfo"
	"github.com/induwarauthsara/folio/pkg/cache"
	"github.com/induwarauthsara/folio/pkg/errors"
	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/page/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is rendered when no formats are requested.
	DefaultFormat = sink.FormatHTML

	// DefaultStylesheet is the href of the bundled stylesheet.
	DefaultStylesheet = "/app.css"

	// DefaultLang is the document language.
	DefaultLang = "en"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	ProfilePath string `json:"profile_path,omitempty"`

	// Compose options
	Now time.Time `json:"now"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"`
	Lang       string   `json:"lang,omitempty"`
	Stylesheet string   `json:"stylesheet,omitempty"`
	InlineCSS  bool     `json:"inline_css,omitempty"`

	// Refresh bypasses cache lookups; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// TTL overrides cache.TTLArtifact for stored entries.
	TTL time.Duration `json:"ttl,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// BuildID identifies this run in logs and response headers.
	BuildID string

	// Document is the composed page.
	Document *page.Document

	// ProfileHash is the content hash of the canonical profile.
	ProfileHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections    int
	Units       int
	Bytes       int
	LoadTime    time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComposeHit bool // Whether the document came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", format, sink.Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the profile path, if one is set.
func (o *Options) ValidateForLoad() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.ProfilePath == "" {
		return nil
	}
	return errors.ValidatePath(o.ProfilePath)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = dedupe(o.Formats)
	if o.Lang == "" {
		o.Lang = DefaultLang
	}
	if o.Stylesheet == "" && !o.InlineCSS {
		o.Stylesheet = DefaultStylesheet
	}
	if o.TTL == 0 {
		o.TTL = cache.TTLArtifact
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// ProfileSource names the profile for logs and metrics.
func (o *Options) ProfileSource() string {
	if o.ProfilePath == "" {
		return "default"
	}
	return o.ProfilePath
}

// HTMLOptions returns the sink options for the HTML renderer.
func (o *Options) HTMLOptions() []sink.HTMLOption {
	opts := []sink.HTMLOption{
		sink.WithLang(o.Lang),
		sink.WithGenerator(buildinfo.Generator()),
	}
	if o.Title != "" {
		opts = append(opts, sink.WithTitle(o.Title))
	}
	if o.InlineCSS {
		opts = append(opts, sink.WithInlineCSS())
	} else {
		opts = append(opts, sink.WithStylesheet(o.Stylesheet))
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Year:       o.Now.Year(),
		Title:      o.Title,
		Lang:       o.Lang,
		Stylesheet: o.Stylesheet,
		InlineCSS:  o.InlineCSS,
		Generator:  buildinfo.Generator(),
	}
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
