package errors

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://induwara.dev", false},
		{"https with path", "https://www.linkedin.com/in/induwarauthsara", false},
		{"http", "http://example.com", false},
		{"mailto", "mailto:someone@example.com", false},

		{"empty", "", true},
		{"relative", "/about", true},
		{"javascript", "javascript:alert(1)", true},
		{"no host", "https://", true},
		{"mailto without address", "mailto:nobody", true},
		{"whitespace", "https://exa mple.com", true},
		{"control char", "https://example.com/\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidURL) {
				t.Errorf("ValidateURL(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidURL)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"absolute asset", "/induwara.jpg", false},
		{"relative asset", "img/portrait.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"traversal", "../secret.jpg", true},
		{"backslash", "img\\portrait.png", true},
		{"null byte", "img\x00.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	choices := []string{"html", "json", "md"}

	if err := ValidateChoice(ErrCodeInvalidFormat, "format", "json", choices); err != nil {
		t.Fatalf("ValidateChoice(json) error = %v", err)
	}

	err := ValidateChoice(ErrCodeInvalidFormat, "format", "htm", choices)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateChoice(htm) code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), `did you mean "html"`) {
		t.Errorf("ValidateChoice(htm) = %q, want suggestion", err.Error())
	}

	err = ValidateChoice(ErrCodeInvalidFormat, "format", "pdf-export", choices)
	if !strings.Contains(err.Error(), "must be one of: html, json, md") {
		t.Errorf("ValidateChoice(pdf-export) = %q, want choice list", err.Error())
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"tech", "tech"},
		{"tehc", "tech"},
		{"WORK", "work"},
		{"comunity", "community"},
		{"footer", ""},
	}

	choices := []string{"top", "work", "community", "tech", "connect"}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := Suggest(tt.value, choices); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
