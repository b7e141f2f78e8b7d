package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/page"
)

// sectionsCommand creates the sections command that prints the page outline.
func (c *CLI) sectionsCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the page outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.composeDocument(cmd.Context(), profilePath, "")
			if err != nil {
				return err
			}
			fmt.Println(renderOutline(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile file (.toml, .yaml or .json)")

	return cmd
}

// renderOutline renders the header, sections and footer as a table.
func renderOutline(doc *page.Document) string {
	rows := [][]string{
		{"#" + doc.Header.ID, "Hero", doc.Header.Hero.Name, strconv.Itoa(len(doc.Header.Hero.Actions))},
	}
	for _, s := range doc.Sections {
		rows = append(rows, []string{"#" + s.ID, sectionLabel(doc, s), s.Heading, strconv.Itoa(s.Units())})
	}
	rows = append(rows, []string{"", "Footer", doc.Footer.Copyright(), "1"})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Anchor", "Section", "Heading", "Units").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 3:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return base
		})

	return t.Render() + "\n" + StyleDim.Render(fmt.Sprintf("%d units across %d sections", doc.Units(), len(doc.Sections)))
}
