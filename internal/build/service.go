// Package build orchestrates the per-locale build plans: file tree
// resolution, navigation construction, render delegation and the final
// cross-locale search deduplication barrier.
package build

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/i18ndocs/internal/alternate"
	"git.home.luguber.info/inful/i18ndocs/internal/config"
	"git.home.luguber.info/inful/i18ndocs/internal/files"
	"git.home.luguber.info/inful/i18ndocs/internal/locale"
	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
	"git.home.luguber.info/inful/i18ndocs/internal/metrics"
	"git.home.luguber.info/inful/i18ndocs/internal/render"
	"git.home.luguber.info/inful/i18ndocs/internal/search"
	"git.home.luguber.info/inful/i18ndocs/internal/source"
	"git.home.luguber.info/inful/i18ndocs/internal/theme"
	"git.home.luguber.info/inful/i18ndocs/internal/workspace"
)

// Service executes complete site builds. All execution paths (CLI,
// preview server, tests) route through it.
type Service struct {
	engine   *render.Engine
	recorder metrics.Recorder
}

// NewService constructs the build service.
func NewService(recorder metrics.Recorder) (*Service, error) {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	engine, err := render.NewEngine()
	if err != nil {
		return nil, err
	}
	return &Service{engine: engine, recorder: recorder}, nil
}

// Request carries the inputs of one build execution.
type Request struct {
	Config *config.Config
	// OutputDir overrides the configured site_dir when non-empty.
	OutputDir string
}

// LocaleResult describes one locale tree's outcome.
type LocaleResult struct {
	Locale   locale.Locale
	Pages    int
	Assets   int
	Duration time.Duration
}

// Result is the outcome of a build execution.
type Result struct {
	BuildID       string
	Locales       []LocaleResult
	SearchEntries int
	SearchRemoved int
	Duration      time.Duration
	StartTime     time.Time
	EndTime       time.Time
}

// Run executes the pipeline: fetch/scan sources, resolve every locale
// tree, build and render each plan, then deduplicate the merged search
// index. A render failure for one locale aborts the whole build.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	cfg := req.Config
	start := time.Now()
	result := &Result{BuildID: uuid.NewString(), StartTime: start}
	slog.Info("Starting documentation build", logfields.BuildID(result.BuildID))

	siteDir := cfg.Site.SiteDir
	if req.OutputDir != "" {
		siteDir = req.OutputDir
	}
	style := files.DirectoryStyle
	if !cfg.Site.DirectoryURLs() {
		style = files.FlatStyle
	}
	set := cfg.LocaleSet()

	docsDir, cleanup, err := s.sourceDir(ctx, cfg)
	if err != nil {
		s.recorder.IncBuildOutcome("failed")
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer cleanup()

	sources, err := source.Scan(docsDir, set)
	if err != nil {
		s.recorder.IncBuildOutcome("failed")
		return nil, fmt.Errorf("%w: %v", ErrSource, err)
	}

	resolver := files.NewResolver(sources, set, style, siteDir)
	root, byLocale := resolver.Trees(cfg.I18n.DefaultLocaleOnly)

	var searchIdx *search.Index
	var searchLangs []string
	if cfg.Search.On() {
		searchIdx = search.NewIndex()
		searchLangs = search.MergeLanguages(cfg.Search.Languages, set)
	}

	var alternates []alternate.Link
	if cfg.I18n.Alternate() && set.Len() > 1 && !cfg.I18n.DefaultLocaleOnly {
		alternates = alternate.Build(set, cfg.DisplayName, style)
	}

	plans := []*Plan{newPlan(cfg, root, siteDir, searchLangs)}
	prefixedDefault := false
	if !cfg.I18n.DefaultLocaleOnly {
		for _, l := range set.All() {
			if _, listed := cfg.I18n.Locales[l.String()]; !listed {
				continue
			}
			if l == set.Default {
				prefixedDefault = true
			}
			outputRoot := filepath.Join(siteDir, l.String())
			plans = append(plans, newPlan(cfg, byLocale[l], outputRoot, searchLangs))
		}
	}

	results, err := s.runPlans(ctx, plans, alternates, set, style, searchIdx)
	if err != nil {
		s.recorder.IncBuildOutcome("failed")
		return nil, err
	}
	result.Locales = results

	if searchIdx != nil {
		if prefixedDefault {
			removed := search.Deduplicate(searchIdx, set.Default)
			result.SearchRemoved = removed
			s.recorder.AddSearchEntriesRemoved(removed)
		}
		result.SearchEntries = searchIdx.Len()
		if err := writeSearchIndex(siteDir, searchIdx); err != nil {
			s.recorder.IncBuildOutcome("failed")
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(start)
	s.recorder.ObserveBuildDuration(result.Duration)
	s.recorder.IncBuildOutcome("success")
	slog.Info("Build finished",
		logfields.BuildID(result.BuildID),
		slog.Int("locales", len(result.Locales)),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

// runPlans executes the locale plans, in parallel when configured. Plans
// share only the synchronized search index; each owns its config clone.
func (s *Service) runPlans(ctx context.Context, plans []*Plan, alternates []alternate.Link,
	set locale.Set, style files.URLStyle, searchIdx *search.Index) ([]LocaleResult, error) {

	concurrency := plans[0].Config.Build.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]LocaleResult, len(plans))
	errs := make([]error, len(plans))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, plan := range plans {
		wg.Add(1)
		go func(i int, plan *Plan) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			res, err := s.runPlan(ctx, plan, alternates, set, style, searchIdx)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			results[i] = res
		}(i, plan)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Service) runPlan(ctx context.Context, plan *Plan, alternates []alternate.Link,
	set locale.Set, style files.URLStyle, searchIdx *search.Index) (LocaleResult, error) {

	started := time.Now()
	slog.Info("Building locale tree",
		logfields.Locale(plan.Locale.String()), logfields.Path(plan.OutputRoot))

	tree := render.Tree{
		Index:      plan.Index,
		Nav:        plan.Nav,
		Alternates: alternates,
		Set:        set,
		Style:      style,
		SiteTitle:  plan.Config.Site.Title,
		Search:     searchIdx,
	}
	pages, assets, err := s.engine.BuildTree(ctx, tree)
	if err != nil {
		return LocaleResult{}, fmt.Errorf("%w: locale %s: %v", ErrRender, plan.Locale, err)
	}
	if err := theme.CopyStatic(plan.OutputRoot); err != nil {
		return LocaleResult{}, fmt.Errorf("%w: theme assets for %s: %v", ErrRender, plan.Locale, err)
	}

	duration := time.Since(started)
	s.recorder.ObserveLocaleBuild(plan.Locale.String(), duration)
	s.recorder.AddPagesRendered(plan.Locale.String(), pages)
	slog.Info("Locale tree built",
		logfields.Locale(plan.Locale.String()),
		logfields.Pages(pages), logfields.Assets(assets),
		logfields.DurationMS(float64(duration.Milliseconds())))
	return LocaleResult{Locale: plan.Locale, Pages: pages, Assets: assets, Duration: duration}, nil
}

// sourceDir resolves the docs directory, cloning repo-backed sources
// into an ephemeral workspace first.
func (s *Service) sourceDir(ctx context.Context, cfg *config.Config) (string, func(), error) {
	if cfg.Source.Repo == "" {
		return cfg.Source.DocsDir, func() {}, nil
	}
	ws := workspace.NewManager("")
	if err := ws.Create(); err != nil {
		return "", nil, err
	}
	checkout, err := source.Fetch(ctx, cfg.Source.Repo, cfg.Source.Branch, ws.Path())
	if err != nil {
		_ = ws.Cleanup()
		return "", nil, err
	}
	cleanup := func() {
		if err := ws.Cleanup(); err != nil {
			slog.Warn("Workspace cleanup failed", logfields.Error(err))
		}
	}
	return filepath.Join(checkout, cfg.Source.DocsDir), cleanup, nil
}

// writeSearchIndex emits the merged index the client-side search loads.
func writeSearchIndex(siteDir string, idx *search.Index) error {
	payload := struct {
		Entries []search.Entry `json:"docs"`
	}{Entries: idx.Entries()}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Join(siteDir, "search")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "search_index.json"), data, 0o644)
}
