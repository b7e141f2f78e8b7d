package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/errors"
	"github.com/induwarauthsara/folio/pkg/page/sink"
	"github.com/induwarauthsara/folio/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output    string   // output directory
	formats   []string // output formats: html, json, md
	profile   string   // profile file; empty uses the built-in profile
	date      string   // build date (YYYY-MM-DD) for reproducible footers
	inlineCSS bool     // embed the stylesheet in the page
	noCache   bool     // disable the artifact cache
	refresh   bool     // re-render even when cached
	quiet     bool     // suppress the spinner and file list
}

// buildCommand creates the build command that renders the site to disk.
func (c *CLI) buildCommand() *cobra.Command {
	var formatsStr string
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the portfolio into the output directory",
		Long: `Build composes the page and writes the requested formats to the output
directory (index.html, page.json, page.md), together with the bundled
stylesheet and any files from the static directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.formats = splitList([]string{formatsStr})
			}
			_, err := c.runBuild(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config: public)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), json, md (comma-separated)")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "profile file (.toml, .yaml or .json)")
	cmd.Flags().StringVar(&opts.date, "date", "", "build date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&opts.inlineCSS, "inline-css", false, "embed the stylesheet in index.html")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	return cmd
}

// execute runs the pipeline within the configured timeout.
func (c *CLI) execute(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	ctx, cancel := c.buildContext(ctx)
	defer cancel()

	result, err := runner.Execute(ctx, opts)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build timed out after %s", c.config().Timeout).
			WithHint("raise timeout in folio.toml or FOLIO_TIMEOUT")
	}
	return result, err
}

// buildContext bounds ctx by Config.Timeout. A zero timeout means no limit.
func (c *CLI) buildContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if t := c.config().Timeout; t > 0 {
		return context.WithTimeout(ctx, t)
	}
	return context.WithCancel(ctx)
}

// runBuild executes the pipeline and writes the site.
func (c *CLI) runBuild(ctx context.Context, opts buildOpts) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	cfg := c.config()

	popts := c.pipelineOptions(opts.formats)
	if opts.profile != "" {
		popts.ProfilePath = opts.profile
	}
	if opts.inlineCSS {
		popts.InlineCSS = true
	}
	popts.Refresh = opts.refresh
	if opts.date != "" {
		now, err := time.Parse(time.DateOnly, opts.date)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --date %q (want YYYY-MM-DD)", opts.date)
		}
		popts.Now = now
	}

	outDir := cfg.OutputDir
	if opts.output != "" {
		outDir = opts.output
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	var spinner *Spinner
	if !opts.quiet {
		spinner = newSpinnerWithContext(ctx, "Composing portfolio")
		spinner.Start()
	}
	stage := func(name string) {
		if spinner != nil {
			spinner.Stage(name)
		}
	}
	prog := newProgress(logger)

	result, err := c.execute(ctx, runner, popts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Build failed")
		}
		return nil, err
	}

	stage("Writing " + outDir)
	written, err := writeSite(outDir, result, popts)
	if err == nil {
		stage("Copying static assets")
		var copied []string
		copied, err = copyStatic(cfg.StaticDir, outDir, cfg.Static)
		written = append(written, copied...)
	}
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Build failed")
		}
		return nil, err
	}

	prog.done("site built", "files", len(written), "output", outDir, "build", result.BuildID[:8])
	if spinner != nil {
		spinner.StopWithSuccess("Built portfolio")
		printStats(result)
		for _, f := range written {
			printFile(f)
		}
		printNextStep("Preview locally", appName+" serve")
	}
	return result, nil
}

// writeSite writes every artifact and, when the page links the bundled
// stylesheet by a local path, the stylesheet itself.
func writeSite(outDir string, result *pipeline.Result, opts pipeline.Options) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", outDir)
	}

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	var written []string
	for _, format := range formats {
		path := filepath.Join(outDir, pipeline.OutputName(format))
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if _, ok := result.Artifacts[sink.FormatHTML]; ok && !opts.InlineCSS {
		if rel, ok := localAsset(opts.Stylesheet); ok {
			path := filepath.Join(outDir, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return written, err
			}
			if err := os.WriteFile(path, sink.Stylesheet(), 0644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// localAsset reports whether href names a file inside the site and returns
// its slash-separated path relative to the output root.
func localAsset(href string) (string, bool) {
	if href == "" || strings.Contains(href, "://") || strings.HasPrefix(href, "//") {
		return "", false
	}
	rel := strings.TrimPrefix(href, "/")
	if rel == "" || errors.ValidatePath(rel) != nil {
		return "", false
	}
	return rel, true
}

// copyStatic copies files under src matching the include globs and none of
// the exclude globs into dst. A missing src is not an error.
func copyStatic(src, dst string, filter StaticConfig) ([]string, error) {
	if src == "" {
		return nil, nil
	}
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return nil, nil
	}

	files, err := matchStatic(os.DirFS(src), filter)
	if err != nil {
		return nil, err
	}

	var copied []string
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(src, filepath.FromSlash(rel)))
		if err != nil {
			return copied, err
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return copied, err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return copied, fmt.Errorf("write %s: %w", target, err)
		}
		copied = append(copied, target)
	}
	return copied, nil
}

// matchStatic returns the sorted, de-duplicated file paths in fsys selected by filter.
func matchStatic(fsys fs.FS, filter StaticConfig) ([]string, error) {
	include := filter.Include
	if len(include) == 0 {
		include = []string{"**/*"}
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid include pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, filter.Exclude) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func excluded(path string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
