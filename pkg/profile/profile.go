package profile

// Highlight is one card in the Highlights section.
type Highlight struct {
	Symbol      string `json:"symbol" toml:"symbol" yaml:"symbol"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

// Experience is one entry of the community timeline.
type Experience struct {
	Title       string `json:"title" toml:"title" yaml:"title"`
	Period      string `json:"period" toml:"period" yaml:"period"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

// TechCategory groups tool names under a heading such as "Frontend".
type TechCategory struct {
	Name  string   `json:"name" toml:"name" yaml:"name"`
	Items []string `json:"items" toml:"items" yaml:"items"`
}

// ResourceLink is an outbound profile link shown in the Connect section.
type ResourceLink struct {
	Label string `json:"label" toml:"label" yaml:"label"`
	Href  string `json:"href" toml:"href" yaml:"href"`
}

// Hero is the introduction at the top of the page.
type Hero struct {
	Name        string   `json:"name" toml:"name" yaml:"name"`
	Initials    string   `json:"initials" toml:"initials" yaml:"initials"`
	Eyebrow     string   `json:"eyebrow" toml:"eyebrow" yaml:"eyebrow"`
	Tagline     string   `json:"tagline" toml:"tagline" yaml:"tagline"`
	Intro       string   `json:"intro" toml:"intro" yaml:"intro"` // inline Markdown
	Meta        []string `json:"meta" toml:"meta" yaml:"meta"`
	PortraitSrc string   `json:"portrait_src" toml:"portrait_src" yaml:"portrait_src"`
	PortraitAlt string   `json:"portrait_alt" toml:"portrait_alt" yaml:"portrait_alt"`
}

// SectionCopy is the eyebrow, heading and optional lead paragraph above a section.
type SectionCopy struct {
	Eyebrow string `json:"eyebrow" toml:"eyebrow" yaml:"eyebrow"`
	Heading string `json:"heading" toml:"heading" yaml:"heading"`
	Lead    string `json:"lead,omitempty" toml:"lead" yaml:"lead"`
}

// Contact holds the email call-to-action texts.
type Contact struct {
	Email        string `json:"email" toml:"email" yaml:"email"`
	CTA          string `json:"cta" toml:"cta" yaml:"cta"`                            // nav button label
	Conversation string `json:"conversation" toml:"conversation" yaml:"conversation"` // hero secondary button
	Greeting     string `json:"greeting" toml:"greeting" yaml:"greeting"`
	Pitch        string `json:"pitch" toml:"pitch" yaml:"pitch"`
	LinksHeading string `json:"links_heading" toml:"links_heading" yaml:"links_heading"`
}

// Copy groups the per-section header texts.
type Copy struct {
	Work         SectionCopy `json:"work" toml:"work" yaml:"work"`
	Community    SectionCopy `json:"community" toml:"community" yaml:"community"`
	PassionTitle string      `json:"passion_title" toml:"passion_title" yaml:"passion_title"`
	Tech         SectionCopy `json:"tech" toml:"tech" yaml:"tech"`
	Connect      SectionCopy `json:"connect" toml:"connect" yaml:"connect"`
	Footer       string      `json:"footer" toml:"footer" yaml:"footer"` // text after "© <year> <name>."
}

// Profile is everything a page is composed from.
type Profile struct {
	Hero         Hero           `json:"hero" toml:"hero" yaml:"hero"`
	Contact      Contact        `json:"contact" toml:"contact" yaml:"contact"`
	Copy         Copy           `json:"copy" toml:"copy" yaml:"copy"`
	Highlights   []Highlight    `json:"highlights" toml:"highlights" yaml:"highlights"`
	Experiences  []Experience   `json:"experiences" toml:"experiences" yaml:"experiences"`
	PassionAreas []string       `json:"passion_areas" toml:"passion_areas" yaml:"passion_areas"`
	TechStack    []TechCategory `json:"tech_stack" toml:"tech_stack" yaml:"tech_stack"`
	Links        []ResourceLink `json:"links" toml:"links" yaml:"links"`
}

// MailtoHref returns the mailto: URI for the contact email.
func (p *Profile) MailtoHref() string {
	return "mailto:" + p.Contact.Email
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Hero.Meta = cloneStrings(p.Hero.Meta)
	c.Highlights = append([]Highlight(nil), p.Highlights...)
	c.Experiences = append([]Experience(nil), p.Experiences...)
	c.PassionAreas = cloneStrings(p.PassionAreas)
	c.Links = append([]ResourceLink(nil), p.Links...)
	c.TechStack = make([]TechCategory, len(p.TechStack))
	for i, tc := range p.TechStack {
		c.TechStack[i] = TechCategory{Name: tc.Name, Items: cloneStrings(tc.Items)}
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
