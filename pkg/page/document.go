package page

import (
	"fmt"
	"html/template"
	"strings"
)

// Delimiter separates tool names on a tech card line.
const Delimiter = " · "

// Section anchors, in page order. AnchorTop belongs to the header.
const (
	AnchorTop       = "top"
	AnchorWork      = "work"
	AnchorCommunity = "community"
	AnchorTech      = "tech"
	AnchorConnect   = "connect"
)

// External link attributes for anchors that leave the page.
const (
	TargetBlank  = "_blank"
	RelNoOpener  = "noopener noreferrer"
	mailtoScheme = "mailto:"
)

// Document is the composed page.
type Document struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
	Footer   Footer    `json:"footer"`
}

// Header is the top navigation bar plus the hero block.
type Header struct {
	ID          string `json:"id"`
	NavID       string `json:"nav_id"`
	NavLinks    []Link `json:"nav_links"`
	Collaborate Link   `json:"collaborate"`
	Hero        Hero   `json:"hero"`
}

// Hero is the introduction block inside the header.
type Hero struct {
	Eyebrow  string        `json:"eyebrow"`
	Name     string        `json:"name"`
	Tagline  string        `json:"tagline"`
	Intro    template.HTML `json:"intro"`
	Actions  []Link        `json:"actions"`
	Meta     []string      `json:"meta"`
	Portrait Image         `json:"portrait"`
}

// Image is a static asset reference.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Link is a rendered anchor.
type Link struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
	Class  string `json:"class,omitempty"`
}

// External reports whether the link opens in a new browsing context.
func (l Link) External() bool { return l.Target == TargetBlank }

// Section is one anchorable region of the page. Exactly one of the unit
// slices is populated, depending on ID; the community section additionally
// carries the passion panel.
type Section struct {
	ID      string `json:"id"`
	Eyebrow string `json:"eyebrow"`
	Heading string `json:"heading"`
	Lead    string `json:"lead,omitempty"`

	Highlights []HighlightCard `json:"highlights,omitempty"`
	Timeline   []TimelineItem  `json:"timeline,omitempty"`
	Passions   *PassionPanel   `json:"passions,omitempty"`
	Tech       []TechCard      `json:"tech,omitempty"`
	Connect    *ConnectPanel   `json:"connect,omitempty"`
}

// Units returns the number of repeated visual units in s.
func (s Section) Units() int {
	n := len(s.Highlights) + len(s.Timeline) + len(s.Tech)
	if s.Passions != nil {
		n += len(s.Passions.Items)
	}
	if s.Connect != nil {
		n += len(s.Connect.Links)
	}
	return n
}

// HighlightCard is one visual unit of the Highlights section.
type HighlightCard struct {
	Key         string `json:"key"`
	Symbol      string `json:"symbol"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TimelineItem is one visual unit of the community timeline.
type TimelineItem struct {
	Key         string `json:"key"`
	Period      string `json:"period"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PassionPanel lists the passion areas below the timeline.
type PassionPanel struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// TechCard is one visual unit of the tech stack section.
type TechCard struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Line     string `json:"line"`
}

// ConnectPanel holds the email card and the outbound profile links.
type ConnectPanel struct {
	Greeting     string `json:"greeting"`
	Email        Link   `json:"email"`
	Pitch        string `json:"pitch"`
	LinksHeading string `json:"links_heading"`
	Links        []Link `json:"links"`
}

// Footer closes the page.
type Footer struct {
	Year      int    `json:"year"`
	Owner     string `json:"owner"`
	Text      string `json:"text"`
	BackToTop Link   `json:"back_to_top"`
}

// Copyright returns the footer's copyright line.
func (f Footer) Copyright() string {
	return strings.TrimSpace(fmt.Sprintf("© %d %s. %s", f.Year, f.Owner, f.Text))
}

// Section returns the section with the given anchor id.
func (d *Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Units returns the total number of repeated visual units across sections.
func (d *Document) Units() int {
	n := 0
	for _, s := range d.Sections {
		n += s.Units()
	}
	return n
}
