package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/induwarauthsara/folio/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())

	assert.Len(t, p.Highlights, 3)
	assert.Len(t, p.Experiences, 3)
	assert.Len(t, p.PassionAreas, 3)
	assert.Len(t, p.Links, 4)

	var names []string
	for _, tc := range p.TechStack {
		names = append(names, tc.Name)
	}
	assert.Equal(t, []string{"Frontend", "Backend", "Database", "Cloud", "AI"}, names)
	assert.Equal(t, "mailto:induwarauthsara@gmail.com", p.MailtoHref())
	assert.Equal(t, "/induwara.jpg", p.Hero.PortraitSrc)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Highlights[0].Title = "changed"
	a.TechStack[0].Items[0] = "Svelte"
	a.PassionAreas = append(a.PassionAreas, "extra")

	b := Default()
	assert.Equal(t, "Full-Stack Web Developer", b.Highlights[0].Title)
	assert.Equal(t, "React", b.TechStack[0].Items[0])
	assert.Len(t, b.PassionAreas, 3)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		code   errors.Code
	}{
		{"empty hero name", func(p *Profile) { p.Hero.Name = " " }, errors.ErrCodeInvalidProfile},
		{"bad email", func(p *Profile) { p.Contact.Email = "nobody" }, errors.ErrCodeInvalidURL},
		{"portrait traversal", func(p *Profile) { p.Hero.PortraitSrc = "../me.jpg" }, errors.ErrCodeInvalidPath},
		{"empty highlight title", func(p *Profile) { p.Highlights[1].Title = "" }, errors.ErrCodeInvalidProfile},
		{"duplicate highlight title", func(p *Profile) { p.Highlights[2].Title = p.Highlights[0].Title }, errors.ErrCodeInvalidProfile},
		{"empty experience title", func(p *Profile) { p.Experiences[0].Title = "" }, errors.ErrCodeInvalidProfile},
		{"duplicate passion", func(p *Profile) { p.PassionAreas[1] = p.PassionAreas[0] }, errors.ErrCodeInvalidProfile},
		{"empty tech category", func(p *Profile) { p.TechStack[3].Name = "" }, errors.ErrCodeInvalidProfile},
		{"duplicate tech category", func(p *Profile) { p.TechStack[4].Name = "Frontend" }, errors.ErrCodeInvalidProfile},
		{"duplicate href", func(p *Profile) { p.Links[3].Href = p.Links[0].Href }, errors.ErrCodeInvalidProfile},
		{"non-http href", func(p *Profile) { p.Links[0].Href = "ftp://induwara.dev" }, errors.ErrCodeInvalidURL},
		{"schemeless href", func(p *Profile) { p.Links[0].Href = "induwara.dev" }, errors.ErrCodeInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "error: %v", err)
		})
	}
}

func TestValidateLinkMessage(t *testing.T) {
	p := Default()
	p.Links[0].Href = "induwara.dev"

	msg := errors.UserMessage(p.Validate())
	assert.Contains(t, msg, `link "induwara.dev"`)
	assert.Contains(t, msg, "http, https or mailto", "the reason should reach the user")
}

func TestValidateAllowsEmptyCollections(t *testing.T) {
	p := &Profile{Hero: Hero{Name: "Ada"}, Contact: Contact{Email: "ada@example.com"}}
	assert.NoError(t, p.Validate())
}

func TestLoad(t *testing.T) {
	for _, file := range []string{"minimal.toml", "minimal.yaml"} {
		t.Run(file, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", file))
			require.NoError(t, err)

			assert.Equal(t, "Ada Example", p.Hero.Name)
			require.Len(t, p.Experiences, 1)
			assert.Equal(t, Experience{Title: "A", Period: "2020–2021", Description: "x"}, p.Experiences[0])
			require.NotEmpty(t, p.TechStack)
			assert.Equal(t, "Languages", p.TechStack[0].Name)
			assert.Equal(t, []string{"Go", "SQL"}, p.TechStack[0].Items)
			assert.Equal(t, "https://github.com/ada", p.Links[0].Href)
		})
	}
}

func TestLoadTOMLKeepsCategoryOrder(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "minimal.toml"))
	require.NoError(t, err)
	require.Len(t, p.TechStack, 2)
	assert.Equal(t, "Languages", p.TechStack[0].Name)
	assert.Equal(t, "Infra", p.TechStack[1].Name)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "missing file: %v", err)

	_, err = Load(filepath.Join("testdata", "duplicate_links.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidProfile), "duplicate links: %v", err)
}

func TestDecode(t *testing.T) {
	_, err := Decode([]byte("hero = 1"), ".toml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidProfile))

	_, err = Decode([]byte("[[higlights]]\ntitle = \"Typo\"\n"), ".toml")
	require.Error(t, err, "unknown TOML tables must be rejected")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidProfile))
	assert.Contains(t, err.Error(), "higlights")

	_, err = Decode([]byte("unknown: true"), "yaml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidProfile))

	_, err = Decode([]byte("<profile/>"), ".xml")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))

	p, err := Decode([]byte(`{"hero":{"name":"Ada"}}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Hero.Name)
}

func TestCanonicalIsStable(t *testing.T) {
	assert.Equal(t, Default().Canonical(), Default().Canonical())

	p := Default()
	p.Links[0].Label = "site"
	assert.NotEqual(t, Default().Canonical(), p.Canonical())
}
