package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/buildinfo"
	"github.com/induwarauthsara/folio/pkg/cache"
	"github.com/induwarauthsara/folio/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "folio"
)

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded by the root command before any subcommand runs.
	Config *Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Folio builds a one-page portfolio site",
		Long:         `Folio composes a personal portfolio page (hero, highlights, community timeline, tech stack and contact links) from a profile and renders it as static HTML, JSON or Markdown.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./folio.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.sectionsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerFlagCompletions(root)

	return root
}

// initConfig applies --verbose, loads configuration and attaches the logger
// to the command context.
func (c *CLI) initConfig(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.File != "" {
		c.Logger.Debug("using config file", "path", cfg.File)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// reloadConfig re-reads the config file so edits apply to the next build.
// On error the previous config stays in place.
func (c *CLI) reloadConfig() error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// config returns the loaded config, or defaults when the root pre-run was skipped.
func (c *CLI) config() *Config {
	if c.Config == nil {
		cfg, err := loadConfig("")
		if err != nil {
			cfg = &Config{}
		}
		c.Config = cfg
	}
	return c.Config
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":"+buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	url := c.config().Cache.URL
	c.Logger.Debug("opening cache", "backend", cache.Describe(url, dir))
	return cache.Open(ctx, url, dir)
}

// pipelineOptions maps config onto pipeline options.
func (c *CLI) pipelineOptions(formats []string) pipeline.Options {
	cfg := c.config()
	if len(formats) == 0 {
		formats = cfg.Formats
	}
	return pipeline.Options{
		ProfilePath: cfg.Profile,
		Formats:     formats,
		Title:       cfg.Site.Title,
		Lang:        cfg.Site.Lang,
		Stylesheet:  cfg.Site.Stylesheet,
		InlineCSS:   cfg.Site.InlineCSS,
		TTL:         cfg.Cache.TTL,
		Logger:      c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/folio/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
