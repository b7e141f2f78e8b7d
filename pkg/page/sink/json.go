package sink

import (
	"encoding/json"

	"github.com/induwarauthsara/folio/pkg/page"
)

// RenderJSON exports doc as indented JSON.
func RenderJSON(doc *page.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
