// Package serve runs the local preview server: it serves the generated
// site over HTTP, watches the docs directory for changes and rebuilds,
// and optionally rebuilds on a fixed interval for repo-backed sources.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/i18ndocs/internal/build"
	"git.home.luguber.info/inful/i18ndocs/internal/config"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Server hosts the preview loop around a build service.
type Server struct {
	cfg     *config.Config
	svc     *build.Service
	metrics http.Handler

	mu        sync.Mutex
	lastError error
}

// New creates a preview server. metricsHandler may be nil, in which
// case no /metrics endpoint is exposed.
func New(cfg *config.Config, svc *build.Service, metricsHandler http.Handler) *Server {
	return &Server{cfg: cfg, svc: svc, metrics: metricsHandler}
}

// Run builds once, starts the HTTP server and blocks processing change
// events until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.rebuild(ctx)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Serve.Port))
	if err != nil {
		return fmt.Errorf("preview listen: %w", err)
	}
	httpServer := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Preview server failed", logfields.Error(err))
		}
	}()
	slog.Info("Preview server listening",
		slog.Int("port", s.cfg.Serve.Port),
		slog.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Serve.Port)))

	rebuildReq, trigger := newDebouncer()
	s.startRebuildWorker(ctx, rebuildReq)

	var scheduler gocron.Scheduler
	if s.cfg.Serve.RebuildInterval > 0 {
		scheduler, err = startIntervalRebuild(s.cfg.Serve.RebuildInterval, trigger)
		if err != nil {
			return err
		}
	}

	// Repo-backed sources have no local directory to watch; the
	// interval job is the only rebuild trigger then.
	var loopErr error
	if s.cfg.Source.Repo == "" {
		loopErr = s.watchLoop(ctx, trigger)
	} else {
		<-ctx.Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	if scheduler != nil {
		if err := scheduler.Shutdown(); err != nil {
			slog.Warn("Scheduler shutdown error", logfields.Error(err))
		}
	}
	return loopErr
}

// Handler returns the HTTP handler serving the generated site, a
// health endpoint and, when configured, Prometheus metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", noCache(http.FileServer(http.Dir(s.cfg.Site.SiteDir))))
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics)
	}
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	err := s.lastError
	s.mu.Unlock()
	if err != nil {
		http.Error(w, "last build failed: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// rebuild runs one build and records its outcome for /healthz. Build
// failures keep the previous site on disk.
func (s *Server) rebuild(ctx context.Context) {
	_, err := s.svc.Run(ctx, build.Request{Config: s.cfg})
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
	if err != nil {
		slog.Warn("Rebuild failed", logfields.Error(err))
	}
}

// newDebouncer coalesces change bursts into single rebuild requests.
func newDebouncer() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(300*time.Millisecond, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// startRebuildWorker processes rebuild requests one at a time,
// remembering at most one pending request received mid-build.
func (s *Server) startRebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				slog.Info("Change detected; rebuilding site")
				s.rebuild(ctx)
			}
		}
	}()
}

// startIntervalRebuild schedules a periodic rebuild trigger.
func startIntervalRebuild(interval time.Duration, trigger func()) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(trigger),
		gocron.WithName("interval-rebuild"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create interval rebuild job: %w", err)
	}
	scheduler.Start()
	slog.Info("Interval rebuild scheduled", slog.Duration("interval", interval))
	return scheduler, nil
}

// noCache disables client caching so rebuilt pages show up on reload.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// docsDirAbs resolves and validates the watched docs directory.
func (s *Server) docsDirAbs() (string, error) {
	abs, err := filepath.Abs(s.cfg.Source.DocsDir)
	if err != nil {
		return "", fmt.Errorf("resolve docs dir: %w", err)
	}
	if st, statErr := os.Stat(abs); statErr != nil || !st.IsDir() {
		return "", fmt.Errorf("docs dir not found or not a directory: %s", abs)
	}
	return abs, nil
}
