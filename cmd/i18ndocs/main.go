package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/i18ndocs/internal/build"
	"git.home.luguber.info/inful/i18ndocs/internal/config"
	"git.home.luguber.info/inful/i18ndocs/internal/metrics"
	"git.home.luguber.info/inful/i18ndocs/internal/serve"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"i18ndocs.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory, overrides site.site_dir"`
	} `cmd:"" help:"Build the localized documentation site"`

	Serve struct {
		Port    int  `short:"p" help:"Port to listen on, overrides serve.port"`
		Metrics bool `help:"Expose Prometheus metrics on /metrics"`
	} `cmd:"" help:"Serve the site locally and rebuild on changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runBuild(cfg, CLI.Build.Output); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "serve":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runServe(cfg, CLI.Serve.Port, CLI.Serve.Metrics); err != nil {
			slog.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := runInit(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
	}
}

func runBuild(cfg *config.Config, outputDir string) error {
	svc, err := build.NewService(nil)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := svc.Run(ctx, build.Request{Config: cfg, OutputDir: outputDir})
	if err != nil {
		return err
	}
	slog.Info("Site built",
		"locales", len(result.Locales),
		"search_entries", result.SearchEntries,
		"duration", result.Duration)
	return nil
}

func runServe(cfg *config.Config, port int, withMetrics bool) error {
	if port > 0 {
		cfg.Serve.Port = port
	}

	var recorder metrics.Recorder
	var metricsHandler http.Handler
	if withMetrics {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		metricsHandler = metrics.HTTPHandler(reg)
	}

	svc, err := build.NewService(recorder)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return serve.New(cfg, svc, metricsHandler).Run(ctx)
}

func runInit(configPath string, force bool) error {
	slog.Info("Initializing configuration", "path", configPath, "force", force)
	return config.Init(configPath, force)
}
