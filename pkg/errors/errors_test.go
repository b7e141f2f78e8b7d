package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	cause := errors.New("no such file")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidInput, "bad date %q", "2025-13-01"), `INVALID_INPUT: bad date "2025-13-01"`},
		{"hint", New(ErrCodeInvalidFormat, "invalid format: %q", "htm").WithHint("did you mean %q?", "html"), `INVALID_FORMAT: invalid format: "htm" (did you mean "html"?)`},
		{"cause", Wrap(ErrCodeFileNotFound, cause, "read profile"), "FILE_NOT_FOUND: read profile: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFileNotFound, cause, "read profile")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInternal, false},
		{"outermost code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal, true},
		{"through fmt wrap", fmt.Errorf("load: %w", New(ErrCodeInvalidProfile, "dup")), ErrCodeInvalidProfile, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
		{"empty code", errors.New("plain error"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidProfile, "test")); got != ErrCodeInvalidProfile {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"with hint", New(ErrCodeSectionNotFound, "unknown section %q", "tec").WithHint("did you mean %q?", "tech"), `unknown section "tec" (did you mean "tech"?)`},
		{"file not found keeps cause", Wrap(ErrCodeFileNotFound, errors.New("stat x: no such file"), "profile not found"), "profile not found: stat x: no such file"},
		{"decode cause kept", Wrap(ErrCodeInvalidProfile, errors.New("yaml: line 3: mapping values are not allowed"), "decode YAML"), "decode YAML: yaml: line 3: mapping values are not allowed"},
		{"nested coded cause", Wrap(ErrCodeInvalidURL, New(ErrCodeInvalidURL, "URL must use http, https or mailto scheme: %q", "site.dev"), "link %q", "site"), `link "site": URL must use http, https or mailto scheme: "site.dev"`},
		{"nested hint", Wrap(ErrCodeInvalidProfile, New(ErrCodeInvalidPath, "path escapes root").WithHint("use a relative path"), "portrait"), "portrait: path escapes root (use a relative path)"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("disk full"), ExitFailure},
		{New(ErrCodeInternal, "boom"), ExitFailure},
		{New(ErrCodeInvalidFormat, "bad"), ExitUsage},
		{fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "missing")), ExitUsage},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
