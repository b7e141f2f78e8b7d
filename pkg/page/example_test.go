package page_test

import (
	"fmt"
	"time"

	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/profile"
)

func ExampleCompose() {
	doc := page.Compose(profile.Default(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	for _, s := range doc.Sections {
		fmt.Printf("#%s: %d units\n", s.ID, s.Units())
	}
	fmt.Println(doc.Footer.Year)
	// Output:
	// #work: 3 units
	// #community: 6 units
	// #tech: 5 units
	// #connect: 4 units
	// 2025
}

func ExampleDocument_Section() {
	doc := page.Compose(profile.Default(), time.Now())

	tech, _ := doc.Section(page.AnchorTech)
	for _, card := range tech.Tech[:2] {
		fmt.Printf("%s: %s\n", card.Category, card.Line)
	}
	// Output:
	// Frontend: React · TypeScript · TailwindCSS · GSAP
	// Backend: Node.js · Express.js · PHP
}
