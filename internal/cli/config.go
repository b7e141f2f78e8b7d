package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// configName is the base name of the optional project config file.
const configName = "folio"

// Config holds settings read from folio.toml and FOLIO_* environment variables.
type Config struct {
	Profile   string        `mapstructure:"profile"`
	OutputDir string        `mapstructure:"output_dir"`
	StaticDir string        `mapstructure:"static_dir"`
	Formats   []string      `mapstructure:"formats"`
	Site      SiteConfig    `mapstructure:"site"`
	Static    StaticConfig  `mapstructure:"static"`
	Serve     ServeConfig   `mapstructure:"serve"`
	Cache     CacheConfig   `mapstructure:"cache"`
	Watch     WatchConfig   `mapstructure:"watch"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// SiteConfig controls page metadata.
type SiteConfig struct {
	Title      string `mapstructure:"title"`
	Lang       string `mapstructure:"lang"`
	Stylesheet string `mapstructure:"stylesheet"`
	InlineCSS  bool   `mapstructure:"inline_css"`
}

// StaticConfig filters the files copied from StaticDir.
type StaticConfig struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl"`
}

// WatchConfig configures rebuild-on-change while serving.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("profile", "")
	v.SetDefault("output_dir", "public")
	v.SetDefault("static_dir", "static")
	v.SetDefault("formats", []string{"html"})
	v.SetDefault("timeout", 30*time.Second)

	v.SetDefault("site.title", "")
	v.SetDefault("site.lang", "en")
	v.SetDefault("site.stylesheet", "/app.css")
	v.SetDefault("site.inline_css", false)

	v.SetDefault("static.include", []string{"**/*"})
	v.SetDefault("static.exclude", []string{"**/.*", "**/*~"})

	v.SetDefault("serve.addr", ":1313")

	v.SetDefault("cache.url", "")
	v.SetDefault("cache.ttl", 24*time.Hour)

	v.SetDefault("watch.enabled", true)
	v.SetDefault("watch.debounce", 300*time.Millisecond)
}

// loadConfig reads configuration. An explicit path must exist; otherwise
// folio.toml in the working directory is optional.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	setConfigDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Formats = splitList(cfg.Formats)
	return &cfg, nil
}

// splitList flattens comma-separated entries, which is how list values
// arrive from environment variables.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
