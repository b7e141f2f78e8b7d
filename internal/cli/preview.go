package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/errors"
	"github.com/induwarauthsara/folio/pkg/page"
)

// Preview styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	defaultPreviewWidth  = 80
	defaultPreviewHeight = 24

	// previewChrome is the number of lines used by the title, tabs and help.
	previewChrome = 7
)

// previewCommand creates the preview command that browses the page in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var profilePath, date, section string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the composed page in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.composeDocument(cmd.Context(), profilePath, date)
			if err != nil {
				return err
			}
			m := newPreviewModel(doc)
			if section != "" {
				if err := m.selectSection(section); err != nil {
					return err
				}
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile file (.toml, .yaml or .json)")
	cmd.Flags().StringVar(&date, "date", "", "page date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&section, "section", "s", "", "section to open: "+strings.Join(browsableSections(), ", "))

	return cmd
}

// composeDocument runs the pipeline for its document only.
func (c *CLI) composeDocument(ctx context.Context, profilePath, date string) (*page.Document, error) {
	opts := c.pipelineOptions([]string{"json"})
	if profilePath != "" {
		opts.ProfilePath = profilePath
	}
	if date != "" {
		now, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --date %q (want YYYY-MM-DD)", date)
		}
		opts.Now = now
	}

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	result, err := c.execute(ctx, runner, opts)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// =============================================================================
// previewModel - Interactive section browser
// =============================================================================

// previewModel is the bubbletea model for browsing page sections.
type previewModel struct {
	doc    *page.Document
	tab    int
	offset int
	width  int
	height int
}

func newPreviewModel(doc *page.Document) previewModel {
	return previewModel{doc: doc, width: defaultPreviewWidth, height: defaultPreviewHeight}
}

// selectSection opens the section with the given anchor id.
func (m *previewModel) selectSection(id string) error {
	for i, s := range m.doc.Sections {
		if s.ID == id {
			m.tab, m.offset = i, 0
			return nil
		}
	}
	ids := browsableSections()
	if s := errors.Suggest(id, ids); s != "" {
		return errors.New(errors.ErrCodeSectionNotFound, "unknown section %q", id).WithHint("did you mean %q?", s)
	}
	return errors.New(errors.ErrCodeSectionNotFound, "unknown section %q", id).WithHint("must be one of: %s", strings.Join(ids, ", "))
}

// browsableSections lists the section anchors shown as preview tabs. The
// hero anchor is the page top, not a tab.
func browsableSections() []string {
	var ids []string
	for _, id := range page.SectionIDs() {
		if id != page.AnchorTop {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.tab = (m.tab + 1) % len(m.doc.Sections)
			m.offset = 0
		case "left", "h", "shift+tab":
			m.tab = (m.tab + len(m.doc.Sections) - 1) % len(m.doc.Sections)
			m.offset = 0
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "g", "home":
			m.offset = 0
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if i := int(msg.String()[0] - '1'); i < len(m.doc.Sections) {
				m.tab, m.offset = i, 0
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m previewModel) bodyHeight() int {
	if h := m.height - previewChrome; h > 3 {
		return h
	}
	return 3
}

func (m previewModel) maxOffset() int {
	n := len(sectionLines(m.doc.Sections[m.tab], m.width)) - m.bodyHeight()
	if n < 0 {
		return 0
	}
	return n
}

func (m previewModel) View() string {
	var b strings.Builder

	hero := m.doc.Header.Hero
	b.WriteString(StyleTitle.Render(hero.Name))
	b.WriteString(listDimStyle.Render("  " + hero.Tagline))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.doc.Sections))
	for i, s := range m.doc.Sections {
		label := fmt.Sprintf("%d %s", i+1, sectionLabel(m.doc, s))
		if i == m.tab {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, listDimStyle.Render(page.Delimiter)))
	b.WriteString("\n\n")

	lines := sectionLines(m.doc.Sections[m.tab], m.width)
	end := m.offset + m.bodyHeight()
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[m.offset:end], "\n"))
	b.WriteString("\n\n")

	b.WriteString(listDimStyle.Render(m.doc.Footer.Copyright()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ section  ↑/↓ scroll  1-4 jump  q quit"))

	return b.String()
}

// sectionLabel returns the navigation label for s, falling back to its id.
func sectionLabel(doc *page.Document, s page.Section) string {
	for _, l := range doc.Header.NavLinks {
		if l.Href == "#"+s.ID {
			return l.Label
		}
	}
	return s.ID
}

// sectionLines renders a section as terminal lines wrapped to width.
func sectionLines(s page.Section, width int) []string {
	if width <= 0 {
		width = defaultPreviewWidth
	}
	wrap := lipgloss.NewStyle().Width(width - 4)

	var lines []string
	add := func(prefix, text string) {
		if text == "" {
			return
		}
		for _, l := range strings.Split(wrap.Render(text), "\n") {
			lines = append(lines, prefix+strings.TrimRight(l, " "))
		}
	}

	lines = append(lines, listDimStyle.Render(strings.ToUpper(s.Eyebrow)))
	lines = append(lines, headingStyle.Render(s.Heading))
	add("", s.Lead)

	for _, h := range s.Highlights {
		lines = append(lines, "", h.Symbol+" "+headingStyle.Render(h.Title))
		add("   ", h.Description)
	}
	for _, t := range s.Timeline {
		lines = append(lines, "", StyleNumber.Render(t.Period)+"  "+headingStyle.Render(t.Title))
		add("   ", t.Description)
	}
	if p := s.Passions; p != nil {
		lines = append(lines, "", headingStyle.Render(p.Title))
		for _, item := range p.Items {
			lines = append(lines, "  • "+item)
		}
	}
	if len(s.Tech) > 0 {
		lines = append(lines, "")
		for _, t := range s.Tech {
			add("", headingStyle.Render(t.Category)+"  "+t.Line)
		}
	}
	if c := s.Connect; c != nil {
		lines = append(lines, "", headingStyle.Render(c.Greeting))
		lines = append(lines, "  "+StyleLink.Render(c.Email.Label))
		add("  ", c.Pitch)
		lines = append(lines, "", headingStyle.Render(c.LinksHeading))
		for _, l := range c.Links {
			lines = append(lines, "  "+l.Label+" "+listDimStyle.Render(iconArrow)+" "+StyleLink.Render(l.Href))
		}
	}
	return lines
}
