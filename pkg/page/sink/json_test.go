package sink

import (
	"encoding/json"
	"testing"

	"github.com/induwarauthsara/folio/pkg/page"
)

func TestRenderJSON(t *testing.T) {
	doc := testDocument(t)

	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("output should end with a newline")
	}

	var out page.Document
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Footer.Year != 2025 {
		t.Errorf("Footer.Year = %d, want 2025", out.Footer.Year)
	}
	if len(out.Sections) != 4 {
		t.Fatalf("Sections count = %d, want 4", len(out.Sections))
	}
	if got := out.Sections[2].Tech[0].Line; got != doc.Sections[2].Tech[0].Line {
		t.Errorf("Tech[0].Line = %q, want %q", got, doc.Sections[2].Tech[0].Line)
	}
	if got := out.Header.Hero.Intro; got != doc.Header.Hero.Intro {
		t.Errorf("Hero.Intro = %q, want %q", got, doc.Header.Hero.Intro)
	}
}
