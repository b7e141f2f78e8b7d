package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/induwarauthsara/folio/pkg/cache"
	"github.com/induwarauthsara/folio/pkg/observability"
	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/profile"
)

// Cache key types reported to observability hooks.
const (
	keyTypeDocument = "document"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → compose → render pipeline with caching.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		BuildID:   uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("build", result.BuildID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	p, hash, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.ProfileHash = hash
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Debug("loaded profile",
		"source", opts.ProfileSource(),
		"hash", hash[:12],
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	// Stage 2: Compose
	composeStart := time.Now()
	doc, composeHit := r.ComposeWithCacheInfo(ctx, p, hash, opts)
	result.Document = doc
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.Sections = len(doc.Sections)
	result.Stats.Units = doc.Units()
	result.CacheInfo.ComposeHit = composeHit

	logger.Info("composed page",
		"sections", result.Stats.Sections,
		"units", result.Stats.Units,
		"year", doc.Footer.Year,
		"cached", composeHit,
		"duration", result.Stats.ComposeTime)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the profile, reporting to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (*profile.Profile, string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}
	source := opts.ProfileSource()
	hooks := observability.Pipeline()

	start := time.Now()
	hooks.OnLoadStart(ctx, source)
	p, hash, err := Load(opts)
	hooks.OnLoadComplete(ctx, source, time.Since(start), err)
	return p, hash, err
}

// ComposeWithCacheInfo composes the document with caching and returns cache hit info.
// Composition cannot fail; a corrupt cache entry falls through to recomposing.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, p *profile.Profile, profileHash string, opts Options) (*page.Document, bool) {
	year := opts.Now.Year()
	if opts.Now.IsZero() {
		year = time.Now().Year()
	}
	cacheKey := r.Keyer.DocumentKey(profileHash, year)
	hooks := observability.Pipeline()

	start := time.Now()
	hooks.OnComposeStart(ctx, year)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var doc page.Document
			if err := json.Unmarshal(data, &doc); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeDocument)
				hooks.OnComposeComplete(ctx, doc.Units(), time.Since(start), nil)
				return &doc, true // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeDocument)
	}

	doc := Compose(p, opts)
	hooks.OnComposeComplete(ctx, doc.Units(), time.Since(start), nil)

	if data, err := json.Marshal(doc); err == nil {
		r.store(ctx, keyTypeDocument, cacheKey, data, cache.TTLDocument)
	}
	return doc, false // Cache miss
}

// Compose is a convenience wrapper that calls ComposeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compose(ctx context.Context, p *profile.Profile, profileHash string, opts Options) *page.Document {
	doc, _ := r.ComposeWithCacheInfo(ctx, p, profileHash, opts)
	return doc
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Only missing formats are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *page.Document, profileHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		cacheKey := r.Keyer.ArtifactKey(profileHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil // All artifacts from cache
	}

	start := time.Now()
	hooks.OnRenderStart(ctx, missing)
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(doc, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(profileHash, opts.ArtifactKeyOpts(format))
		r.store(ctx, keyTypeArtifact, cacheKey, data, opts.TTL)
		artifacts[format] = data
	}

	return artifacts, false, nil // Cache miss
}

// store writes to the cache, logging but not failing on errors.
func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
