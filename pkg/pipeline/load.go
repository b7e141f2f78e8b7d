package pipeline

import (
	"github.com/induwarauthsara/folio/pkg/cache"
	"github.com/induwarauthsara/folio/pkg/profile"
)

// Load reads and validates the profile named by opts.ProfilePath.
// An empty path yields the built-in profile.
func Load(opts Options) (*profile.Profile, string, error) {
	p, err := profile.Load(opts.ProfilePath)
	if err != nil {
		return nil, "", err
	}
	return p, cache.Hash(p.Canonical()), nil
}
