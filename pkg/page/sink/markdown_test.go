package sink

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown(testDocument(t))
	if err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	md := string(out)

	want := []string{
		"# ",
		"## ",
		"### Frontend",
		"[GitHub](https://github.com/induwarauthsara)",
		"[induwara.dev](https://induwara.dev)",
		"© 2025",
	}
	for _, w := range want {
		if !strings.Contains(md, w) {
			t.Errorf("markdown missing %q", w)
		}
	}

	if strings.Contains(md, "<") && strings.Contains(md, "</") {
		t.Error("markdown still contains HTML tags")
	}
	if strings.Contains(md, "[Tech Stack](#tech)") {
		t.Error("navigation bar was not stripped")
	}
	if strings.Contains(md, "\n\n\n") {
		t.Error("markdown contains runs of blank lines")
	}
}

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "strips nav",
			in:   "<html><body><nav><a href='#a'>A</a></nav><p>hi</p></body></html>",
			want: "<p>hi</p>",
		},
		{
			name: "nested nav",
			in:   "<body><header><nav>x</nav><h1>T</h1></header></body>",
			want: "<header><h1>T</h1></header>",
		},
		{
			name: "fragment gets implicit body",
			in:   "<p>plain</p>",
			want: "<p>plain</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractBody([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
