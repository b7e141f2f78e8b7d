package errors

import (
	"net/url"
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known value
// before Suggest gives up.
const maxSuggestDistance = 2

// ValidateURL validates an outbound link target.
// Only absolute http(s) URLs with a host and mailto: addresses are accepted.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}
	for _, r := range rawURL {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidURL, "URL contains whitespace or control characters: %q", rawURL)
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "parse URL %q", rawURL)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return New(ErrCodeInvalidURL, "URL has no host: %q", rawURL)
		}
	case "mailto":
		if !strings.Contains(u.Opaque, "@") {
			return New(ErrCodeInvalidURL, "mailto URL has no address: %q", rawURL)
		}
	default:
		return New(ErrCodeInvalidURL, "URL must use http, https or mailto scheme: %q", rawURL)
	}
	return nil
}

// ValidatePath validates an asset path referenced by the page (e.g. the portrait).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateChoice checks that value is one of choices. The returned error
// carries code and, when a choice is close enough, a "did you mean" hint.
func ValidateChoice(code Code, kind, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	if s := Suggest(value, choices); s != "" {
		return New(code, "invalid %s: %q", kind, value).WithHint("did you mean %q?", s)
	}
	return New(code, "invalid %s: %q", kind, value).WithHint("must be one of: %s", strings.Join(choices, ", "))
}

// Suggest returns the choice closest to value by edit distance, or "" when
// none is within maxSuggestDistance.
func Suggest(value string, choices []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range choices {
		d := levenshtein.ComputeDistance(strings.ToLower(value), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
