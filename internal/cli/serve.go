package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/induwarauthsara/folio/pkg/observability"
	"github.com/induwarauthsara/folio/pkg/observability/metrics"
	"github.com/induwarauthsara/folio/pkg/page/sink"
	"github.com/induwarauthsara/folio/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown of the preview server.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command: build, serve, and rebuild on change.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noWatch bool
	opts := buildOpts{formats: sink.Formats, quiet: true}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio locally and rebuild on changes",
		Long: `Serve builds the site, then serves it on a local address. The page is
available at /, the document tree at /page.json, Markdown at /page.md,
a health check at /healthz and Prometheus metrics at /metrics.

The profile file and static directory are watched; changes trigger a
rebuild after a short debounce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			if addr == "" {
				addr = cfg.Serve.Addr
			}
			watch := cfg.Watch.Enabled && !noWatch
			return c.runServe(cmd.Context(), addr, watch, opts)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config: :1313)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config: public)")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "profile file (.toml, .yaml or .json)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not rebuild on file changes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, watch bool, opts buildOpts) error {
	logger := loggerFromContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.New(reg).Install()
	defer observability.Reset()

	srv := &server{
		build:  func(ctx context.Context) (*pipeline.Result, error) { return c.runBuild(ctx, opts) },
		logger: logger,
		outDir: c.config().OutputDir,
		gather: reg,
	}
	if opts.output != "" {
		srv.outDir = opts.output
	}

	if err := srv.rebuild(ctx); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	if watch {
		paths := []string{c.config().StaticDir}
		if p := c.profilePath(opts); p != "" {
			paths = append(paths, p)
		}
		if f := c.config().File; f != "" {
			paths = append(paths, f)
		}
		w, err := newWatcher(logger, c.config().Watch.Debounce, func() {
			if err := srv.rebuildWith(ctx, c.reloadConfig); err != nil {
				printWarning("Rebuild failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
		for _, p := range paths {
			w.Add(p)
		}
		go w.Run(ctx)
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	printSuccess("Serving portfolio")
	printKeyValue("Address", StyleLink.Render("http://"+displayAddr(addr)))
	printKeyValue("Output", srv.outDir)
	printKeyValue("Watching", fmt.Sprintf("%t", watch))
	printDetail("Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (c *CLI) profilePath(opts buildOpts) string {
	if opts.profile != "" {
		return opts.profile
	}
	return c.config().Profile
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

// =============================================================================
// Server
// =============================================================================

// server holds the latest build and serves it.
type server struct {
	build  func(context.Context) (*pipeline.Result, error)
	logger *log.Logger
	outDir string
	gather prometheus.Gatherer

	buildMu  sync.Mutex // serializes rebuilds
	mu       sync.RWMutex
	result   *pipeline.Result
	buildErr error
	builtAt  time.Time
}

// rebuild runs the build and swaps in the result. A failed rebuild keeps the
// previous result and is reported by /healthz.
func (s *server) rebuild(ctx context.Context) error {
	return s.rebuildWith(ctx, nil)
}

// rebuildWith runs prepare and then the build, both under the build lock.
// A prepare error fails the rebuild like a build error.
func (s *server) rebuildWith(ctx context.Context, prepare func() error) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	start := time.Now()
	var result *pipeline.Result
	var err error
	if prepare != nil {
		err = prepare()
	}
	if err == nil {
		result, err = s.build(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildErr = err
	if err != nil {
		s.logger.Error("build failed", "error", err)
		return err
	}
	s.result = result
	s.builtAt = time.Now()
	s.logger.Info("site built", "build", result.BuildID, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *server) current() (*pipeline.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.buildErr
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(noCache)

	r.Get("/", s.artifact(sink.FormatHTML, "text/html; charset=utf-8"))
	r.Get("/index.html", s.artifact(sink.FormatHTML, "text/html; charset=utf-8"))
	r.Get("/page.json", s.artifact(sink.FormatJSON, "application/json"))
	r.Get("/page.md", s.artifact(sink.FormatMarkdown, "text/markdown; charset=utf-8"))
	r.Get("/healthz", s.health)
	if s.gather != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{}))
	}
	r.NotFound(http.FileServer(http.Dir(s.outDir)).ServeHTTP)

	return r
}

func (s *server) artifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, _ := s.current()
		if result == nil {
			http.Error(w, "site not built", http.StatusServiceUnavailable)
			return
		}
		data, ok := result.Artifacts[format]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Folio-Build", result.BuildID)
		_, _ = w.Write(data)
	}
}

type healthResponse struct {
	Status  string    `json:"status"`
	Build   string    `json:"build,omitempty"`
	BuiltAt time.Time `json:"built_at,omitempty"`
	Year    int       `json:"year,omitempty"`
	Error   string    `json:"error,omitempty"`
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	result, err := s.current()
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK

	s.mu.RLock()
	resp.BuiltAt = s.builtAt
	s.mu.RUnlock()

	if result != nil {
		resp.Build = result.BuildID
		resp.Year = result.Document.Footer.Year
	}
	if err != nil || result == nil {
		resp.Status = "error"
		code = http.StatusServiceUnavailable
		if err != nil {
			resp.Error = err.Error()
			observability.HTTP().OnError(r.Context(), r.Method, "/healthz", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// instrument reports requests to the HTTP observability hooks, labelled by
// route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := "static"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Watcher
// =============================================================================

// watcher debounces file system events into rebuild calls.
type watcher struct {
	fs       *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration
	onChange func()

	// files limits events in a watched directory to these names; a
	// directory with no entry reports every change.
	files map[string]map[string]bool
}

func newWatcher(logger *log.Logger, debounce time.Duration, onChange func()) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &watcher{
		fs:       fw,
		logger:   logger,
		debounce: debounce,
		onChange: onChange,
		files:    make(map[string]map[string]bool),
	}, nil
}

// Add watches path. Directories are watched recursively; for a file, its
// parent directory is watched so editors that replace files are seen.
func (w *watcher) Add(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		w.logger.Debug("not watching missing path", "path", path)
		return
	}
	if !info.IsDir() {
		dir := filepath.Dir(path)
		if w.files[dir] == nil {
			w.files[dir] = make(map[string]bool)
		}
		w.files[dir][filepath.Base(path)] = true
		w.addDir(dir)
		return
	}
	_ = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			w.addDir(p)
		}
		return nil
	})
}

func (w *watcher) addDir(dir string) {
	if err := w.fs.Add(dir); err != nil {
		w.logger.Warn("watch failed", "path", dir, "error", err)
		return
	}
	w.logger.Debug("watching", "path", dir)
}

// relevant reports whether an event on name should trigger a rebuild.
func (w *watcher) relevant(name string) bool {
	names, ok := w.files[filepath.Dir(name)]
	if !ok {
		return true
	}
	return names[filepath.Base(name)]
}

// Run processes events until ctx is done or the watcher is closed.
func (w *watcher) Run(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.Add(event.Name)
				}
			}
			if !w.relevant(event.Name) {
				continue
			}
			w.logger.Info("change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *watcher) Close() error {
	return w.fs.Close()
}
