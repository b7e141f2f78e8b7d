package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.File != "" {
		t.Errorf("File = %q, want none", cfg.File)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("OutputDir = %q, want public", cfg.OutputDir)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("StaticDir = %q, want static", cfg.StaticDir)
	}
	if !reflect.DeepEqual(cfg.Formats, []string{"html"}) {
		t.Errorf("Formats = %v, want [html]", cfg.Formats)
	}
	if cfg.Serve.Addr != ":1313" {
		t.Errorf("Serve.Addr = %q, want :1313", cfg.Serve.Addr)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
	}
	if cfg.Site.Stylesheet != "/app.css" {
		t.Errorf("Site.Stylesheet = %q, want /app.css", cfg.Site.Stylesheet)
	}
	if !cfg.Watch.Enabled {
		t.Error("Watch.Enabled should default to true")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
output_dir = "site"
formats = ["html", "md"]

[site]
title = "Ada"
inline_css = true

[serve]
addr = "127.0.0.1:8080"

[cache]
ttl = "1h"

[static]
exclude = ["drafts/**"]
`
	if err := os.WriteFile(filepath.Join(dir, "folio.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if filepath.Base(cfg.File) != "folio.toml" {
		t.Errorf("File = %q, want folio.toml", cfg.File)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("OutputDir = %q, want site", cfg.OutputDir)
	}
	if !reflect.DeepEqual(cfg.Formats, []string{"html", "md"}) {
		t.Errorf("Formats = %v, want [html md]", cfg.Formats)
	}
	if cfg.Site.Title != "Ada" || !cfg.Site.InlineCSS {
		t.Errorf("Site = %+v", cfg.Site)
	}
	if cfg.Serve.Addr != "127.0.0.1:8080" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
	}
	if !reflect.DeepEqual(cfg.Static.Exclude, []string{"drafts/**"}) {
		t.Errorf("Static.Exclude = %v", cfg.Static.Exclude)
	}
	// untouched keys keep defaults
	if cfg.StaticDir != "static" {
		t.Errorf("StaticDir = %q, want static", cfg.StaticDir)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FOLIO_OUTPUT_DIR", "dist")
	t.Setenv("FOLIO_SERVE_ADDR", ":9000")
	t.Setenv("FOLIO_FORMATS", "json,md")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want dist", cfg.OutputDir)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q, want :9000", cfg.Serve.Addr)
	}
	if !reflect.DeepEqual(cfg.Formats, []string{"json", "md"}) {
		t.Errorf("Formats = %v, want [json md]", cfg.Formats)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("explicit missing config file should fail")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"html"}, []string{"html"}},
		{[]string{"html,md"}, []string{"html", "md"}},
		{[]string{" json , md ", ""}, []string{"json", "md"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
