package page

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induwarauthsara/folio/pkg/profile"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

func TestComposeSectionOrder(t *testing.T) {
	doc := Compose(profile.Default(), fixedNow)

	assert.Equal(t, AnchorTop, doc.Header.ID)
	var ids []string
	for _, s := range doc.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"work", "community", "tech", "connect"}, ids)
	assert.Equal(t, append([]string{"top"}, ids...), SectionIDs())

	var nav []string
	for _, l := range doc.Header.NavLinks {
		nav = append(nav, l.Href)
	}
	assert.Equal(t, []string{"#work", "#community", "#tech", "#connect"}, nav)
}

func TestComposeHighlights(t *testing.T) {
	p := profile.Default()
	doc := Compose(p, fixedNow)

	work, ok := doc.Section(AnchorWork)
	require.True(t, ok)
	require.Len(t, work.Highlights, len(p.Highlights))
	for i, h := range p.Highlights {
		card := work.Highlights[i]
		assert.Equal(t, h.Symbol, card.Symbol)
		assert.Equal(t, h.Title, card.Title)
		assert.Equal(t, h.Description, card.Description)
		assert.Equal(t, h.Title, card.Key)
	}
}

func TestComposeTechLines(t *testing.T) {
	p := profile.Default()
	doc := Compose(p, fixedNow)

	tech, ok := doc.Section(AnchorTech)
	require.True(t, ok)
	require.Len(t, tech.Tech, len(p.TechStack))
	for i, tc := range p.TechStack {
		assert.Equal(t, tc.Name, tech.Tech[i].Category)
		assert.Equal(t, strings.Join(tc.Items, " · "), tech.Tech[i].Line)
	}
	assert.Equal(t, "React · TypeScript · TailwindCSS · GSAP", tech.Tech[0].Line)
}

func TestComposeFooterYear(t *testing.T) {
	for _, year := range []int{1999, 2025, 2031} {
		now := time.Date(year, time.December, 31, 23, 59, 0, 0, time.UTC)
		doc := Compose(profile.Default(), now)
		assert.Equal(t, year, doc.Footer.Year)
	}

	doc := Compose(profile.Default(), fixedNow)
	assert.Equal(t, "© 2025 Induwara Uthsara. Crafted with curiosity and purpose.", doc.Footer.Copyright())
	assert.Equal(t, "#top", doc.Footer.BackToTop.Href)
}

func TestComposeLinksOpenInNewContext(t *testing.T) {
	p := profile.Default()
	doc := Compose(p, fixedNow)

	connect, ok := doc.Section(AnchorConnect)
	require.True(t, ok)
	require.NotNil(t, connect.Connect)
	require.Len(t, connect.Connect.Links, len(p.Links))
	for i, l := range p.Links {
		got := connect.Connect.Links[i]
		assert.Equal(t, l.Href, got.Href)
		assert.Equal(t, l.Label, got.Label)
		assert.True(t, got.External())
		assert.Equal(t, "noopener noreferrer", got.Rel)
	}

	assert.Equal(t, "mailto:induwarauthsara@gmail.com", connect.Connect.Email.Href)
	assert.Equal(t, "induwarauthsara@gmail.com", connect.Connect.Email.Label)
	assert.False(t, connect.Connect.Email.External())
}

func TestComposeSingleExperience(t *testing.T) {
	p := profile.Default()
	p.Experiences = []profile.Experience{{Title: "A", Period: "2020–2021", Description: "x"}}

	community, ok := Compose(p, fixedNow).Section(AnchorCommunity)
	require.True(t, ok)
	require.Len(t, community.Timeline, 1)
	assert.Equal(t, TimelineItem{Key: "A", Period: "2020–2021", Title: "A", Description: "x"}, community.Timeline[0])
}

func TestComposePassions(t *testing.T) {
	p := profile.Default()
	community, _ := Compose(p, fixedNow).Section(AnchorCommunity)

	require.NotNil(t, community.Passions)
	assert.Equal(t, "What keeps me curious", community.Passions.Title)
	assert.Equal(t, p.PassionAreas, community.Passions.Items)
}

func TestComposeIsIdempotent(t *testing.T) {
	a := Compose(profile.Default(), fixedNow)
	b := Compose(profile.Default(), fixedNow)
	assert.Equal(t, a, b)
}

func TestComposeDoesNotAliasProfile(t *testing.T) {
	p := profile.Default()
	doc := Compose(p, fixedNow)

	p.PassionAreas[0] = "changed"
	p.Hero.Meta[0] = "changed"

	community, _ := doc.Section(AnchorCommunity)
	assert.NotEqual(t, "changed", community.Passions.Items[0])
	assert.NotEqual(t, "changed", doc.Header.Hero.Meta[0])
}

func TestComposeEmptyCollections(t *testing.T) {
	p := &profile.Profile{Hero: profile.Hero{Name: "Ada"}, Contact: profile.Contact{Email: "ada@example.com"}}
	doc := Compose(p, fixedNow)

	require.Len(t, doc.Sections, 4)
	assert.Zero(t, doc.Units())
	_, ok := doc.Section("missing")
	assert.False(t, ok)
}

func TestDocumentUnits(t *testing.T) {
	doc := Compose(profile.Default(), fixedNow)
	// 3 highlights + 3 experiences + 3 passions + 5 tech cards + 4 links
	assert.Equal(t, 18, doc.Units())
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Hello world", "Hello world"},
		{"emphasis", "Ship **fast**", "Ship <strong>fast</strong>"},
		{"escapes entities", "R&D <3", "R&amp;D &lt;3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(renderInline(tt.src)))
		})
	}
}

func TestRenderInlineOmitsRawHTML(t *testing.T) {
	out := string(renderInline("hi <script>alert(1)</script>"))
	assert.NotContains(t, out, "<script>")
}
