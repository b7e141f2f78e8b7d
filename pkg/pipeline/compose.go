package pipeline

import (
	"time"

	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/profile"
)

// Compose builds the page document for opts.Now.
func Compose(p *profile.Profile, opts Options) *page.Document {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return page.Compose(p, now)
}
