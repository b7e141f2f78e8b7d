// Package cache provides the artifact cache used by the build pipeline.
//
// Rendering a page is cheap, but the CLI rebuilds on every file change while
// serving, and the same profile is often rendered to several formats. The
// pipeline stores composed documents and rendered artifacts under
// content-addressed keys so unchanged inputs skip straight to the output.
//
// # Backends
//
//   - [FileCache]: JSON entries under the user cache directory (CLI default)
//   - [RedisCache]: shared cache selected with a redis:// URL
//   - [NullCache]: disables caching
//
// [Open] selects a backend from a URL.
//
// # Keys
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes every option that
// affects the output, so changing the title or stylesheet never returns a
// stale artifact. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/induwarauthsara/folio/pkg/errors"
)

// Default TTLs.
const (
	TTLDocument = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// DocumentKey identifies a composed document.
	DocumentKey(profileHash string, year int) string

	// ArtifactKey identifies a rendered artifact.
	ArtifactKey(profileHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render option that changes artifact bytes.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Year       int    `json:"year"`
	Title      string `json:"title,omitempty"`
	Lang       string `json:"lang,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
	InlineCSS  bool   `json:"inline_css,omitempty"`
	Generator  string `json:"generator,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DocumentKey returns "document:<hash>".
func (DefaultKeyer) DocumentKey(profileHash string, year int) string {
	return hashKey("document", profileHash, year)
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(profileHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, profileHash, opts)
}

// ScopedKeyer prefixes every key from inner. The CLI scopes keys by build
// version so a new binary never serves artifacts from an older template.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a keyer that prepends prefix, for example
// "folio:v1.2.0:". A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) DocumentKey(profileHash string, year int) string {
	return k.prefix + k.inner.DocumentKey(profileHash, year)
}

func (k *ScopedKeyer) ArtifactKey(profileHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(profileHash, opts)
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex SHA-256 of data. The pipeline uses it to address
// profiles by their canonical JSON.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything. It backs --no-cache and cache.url=none.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

// Open returns the cache backend described by url:
//
//	""                    file cache in dir
//	"none", "off"         no caching
//	"redis://..."         Redis (also "rediss://")
func Open(ctx context.Context, url, dir string) (Cache, error) {
	switch {
	case url == "":
		return NewFileCache(dir)
	case url == "none" || url == "off":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return NewRedisCache(ctx, url)
	default:
		scheme, _, _ := strings.Cut(url, ":")
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported cache backend %q", scheme)
	}
}

// Describe returns a short, credential-free description of a cache URL.
func Describe(url, dir string) string {
	switch {
	case url == "":
		return "file:" + dir
	case url == "none" || url == "off":
		return "disabled"
	}
	if at := strings.LastIndex(url, "@"); at >= 0 {
		scheme, _, _ := strings.Cut(url, "://")
		return fmt.Sprintf("%s://%s", scheme, url[at+1:])
	}
	return url
}
