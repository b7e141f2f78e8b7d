package sink_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/induwarauthsara/folio/pkg/page"
	"github.com/induwarauthsara/folio/pkg/page/sink"
	"github.com/induwarauthsara/folio/pkg/profile"
)

func ExampleRenderHTML() {
	doc := page.Compose(profile.Default(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	html, err := sink.RenderHTML(doc, sink.WithTitle("Portfolio"))
	if err != nil {
		panic(err)
	}

	fmt.Println("Tech cards:", strings.Count(string(html), `class="tech-card"`))
	fmt.Println("Has title:", strings.Contains(string(html), "<title>Portfolio</title>"))
	// Output:
	// Tech cards: 5
	// Has title: true
}
