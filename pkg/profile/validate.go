package profile

import (
	"strings"

	"github.com/induwarauthsara/folio/pkg/errors"
)

// Validate checks the display-key invariants of p. It reports the first
// violation found, scanning collections in page order. Bad link targets
// carry INVALID_URL, a bad portrait path INVALID_PATH, and everything else
// INVALID_PROFILE.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Hero.Name) == "" {
		return errors.New(errors.ErrCodeInvalidProfile, "hero name cannot be empty")
	}
	if p.Hero.PortraitSrc != "" {
		if err := errors.ValidatePath(p.Hero.PortraitSrc); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "portrait")
		}
	}
	if err := errors.ValidateURL(p.MailtoHref()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidURL, err, "contact email %q", p.Contact.Email)
	}

	titles := make(map[string]bool, len(p.Highlights))
	for i, h := range p.Highlights {
		if h.Title == "" {
			return errors.New(errors.ErrCodeInvalidProfile, "highlight %d has no title", i)
		}
		if titles[h.Title] {
			return errors.New(errors.ErrCodeInvalidProfile, "duplicate highlight title: %q", h.Title)
		}
		titles[h.Title] = true
	}

	for i, e := range p.Experiences {
		if e.Title == "" {
			return errors.New(errors.ErrCodeInvalidProfile, "experience %d has no title", i)
		}
	}

	seen := make(map[string]bool, len(p.PassionAreas))
	for _, a := range p.PassionAreas {
		if seen[a] {
			return errors.New(errors.ErrCodeInvalidProfile, "duplicate passion area: %q", a)
		}
		seen[a] = true
	}

	names := make(map[string]bool, len(p.TechStack))
	for i, tc := range p.TechStack {
		if tc.Name == "" {
			return errors.New(errors.ErrCodeInvalidProfile, "tech category %d has no name", i)
		}
		if names[tc.Name] {
			return errors.New(errors.ErrCodeInvalidProfile, "duplicate tech category: %q", tc.Name)
		}
		names[tc.Name] = true
	}

	hrefs := make(map[string]bool, len(p.Links))
	for _, l := range p.Links {
		if err := errors.ValidateURL(l.Href); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidURL, err, "link %q", l.Label)
		}
		if hrefs[l.Href] {
			return errors.New(errors.ErrCodeInvalidProfile, "duplicate link href: %q", l.Href)
		}
		hrefs[l.Href] = true
	}
	return nil
}
