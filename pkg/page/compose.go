package page

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/induwarauthsara/folio/pkg/profile"
)

// markdown renders the hero intro. Raw HTML in the source is escaped
// (goldmark's default), so profile text can never inject markup.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// navSections lists the header navigation entries in display order.
var navSections = []struct{ id, label string }{
	{AnchorWork, "Work"},
	{AnchorCommunity, "Community"},
	{AnchorTech, "Tech Stack"},
	{AnchorConnect, "Connect"},
}

// SectionIDs returns every anchor of the page in document order,
// starting with the header's AnchorTop.
func SectionIDs() []string {
	ids := []string{AnchorTop}
	for _, s := range navSections {
		ids = append(ids, s.id)
	}
	return ids
}

// Compose builds the page document for p. now is only used for the
// footer's copyright year.
func Compose(p *profile.Profile, now time.Time) *Document {
	mailto := p.MailtoHref()

	return &Document{
		Header: composeHeader(p, mailto),
		Sections: []Section{
			composeWork(p),
			composeCommunity(p),
			composeTech(p),
			composeConnect(p, mailto),
		},
		Footer: Footer{
			Year:      now.Year(),
			Owner:     p.Hero.Name,
			Text:      p.Copy.Footer,
			BackToTop: Link{Label: "Back to top ↑", Href: "#" + AnchorTop, Class: "back-top"},
		},
	}
}

func composeHeader(p *profile.Profile, mailto string) Header {
	nav := make([]Link, 0, len(navSections))
	for _, s := range navSections {
		nav = append(nav, Link{Label: s.label, Href: "#" + s.id})
	}

	return Header{
		ID:          AnchorTop,
		NavID:       p.Hero.Initials,
		NavLinks:    nav,
		Collaborate: Link{Label: p.Contact.CTA, Href: mailto, Class: "ghost-link"},
		Hero: Hero{
			Eyebrow: p.Hero.Eyebrow,
			Name:    p.Hero.Name,
			Tagline: p.Hero.Tagline,
			Intro:   renderInline(p.Hero.Intro),
			Actions: []Link{
				{Label: "View Highlights", Href: "#" + AnchorWork, Class: "primary-btn"},
				{Label: p.Contact.Conversation, Href: mailto, Class: "secondary-btn"},
			},
			Meta:     append([]string(nil), p.Hero.Meta...),
			Portrait: Image{Src: p.Hero.PortraitSrc, Alt: p.Hero.PortraitAlt},
		},
	}
}

func composeWork(p *profile.Profile) Section {
	cards := make([]HighlightCard, len(p.Highlights))
	for i, h := range p.Highlights {
		cards[i] = HighlightCard{Key: h.Title, Symbol: h.Symbol, Title: h.Title, Description: h.Description}
	}
	return withCopy(Section{ID: AnchorWork, Highlights: cards}, p.Copy.Work)
}

func composeCommunity(p *profile.Profile) Section {
	items := make([]TimelineItem, len(p.Experiences))
	for i, e := range p.Experiences {
		items[i] = TimelineItem{Key: e.Title, Period: e.Period, Title: e.Title, Description: e.Description}
	}
	s := Section{
		ID:       AnchorCommunity,
		Timeline: items,
		Passions: &PassionPanel{
			Title: p.Copy.PassionTitle,
			Items: append([]string{}, p.PassionAreas...),
		},
	}
	return withCopy(s, p.Copy.Community)
}

func composeTech(p *profile.Profile) Section {
	cards := make([]TechCard, len(p.TechStack))
	for i, tc := range p.TechStack {
		cards[i] = TechCard{Key: tc.Name, Category: tc.Name, Line: strings.Join(tc.Items, Delimiter)}
	}
	return withCopy(Section{ID: AnchorTech, Tech: cards}, p.Copy.Tech)
}

func composeConnect(p *profile.Profile, mailto string) Section {
	links := make([]Link, len(p.Links))
	for i, l := range p.Links {
		links[i] = Link{Label: l.Label, Href: l.Href, Target: TargetBlank, Rel: RelNoOpener}
	}
	s := Section{
		ID: AnchorConnect,
		Connect: &ConnectPanel{
			Greeting:     p.Contact.Greeting,
			Email:        Link{Label: strings.TrimPrefix(mailto, mailtoScheme), Href: mailto, Class: "primary-btn"},
			Pitch:        p.Contact.Pitch,
			LinksHeading: p.Contact.LinksHeading,
			Links:        links,
		},
	}
	return withCopy(s, p.Copy.Connect)
}

func withCopy(s Section, c profile.SectionCopy) Section {
	s.Eyebrow = c.Eyebrow
	s.Heading = c.Heading
	s.Lead = c.Lead
	return s
}

// renderInline converts Markdown text to HTML. A single paragraph is
// unwrapped so the caller controls the enclosing element.
func renderInline(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
