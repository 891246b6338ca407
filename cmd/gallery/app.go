package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vango-dev/gallery"
	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/internal/dev"
	"github.com/vango-dev/gallery/internal/logging"
	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/layout"
	"github.com/vango-dev/gallery/pkg/router"
)

// loadConfig reads the configuration in dir. Callers validate after
// applying flag overrides.
func loadConfig(dir string) (*config.Config, error) {
	return config.Load(dir)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// newSource builds the discovery source selected by cfg.Source.Kind.
func newSource(cfg *config.Config, logger *slog.Logger) discovery.Source {
	conv := cfg.Convention()
	if cfg.Source.Kind == config.SourceS3 {
		client := discovery.NewS3Client(discovery.S3ClientOptions{
			Region:          cfg.Source.Region,
			Endpoint:        cfg.Source.Endpoint,
			PathStyle:       cfg.Source.PathStyle,
			AccessKeyID:     cfg.Source.AccessKeyID,
			SecretAccessKey: cfg.Source.SecretAccessKey,
		})
		return discovery.S3(client, cfg.Source.Bucket, conv, discovery.WithS3Logger(logger))
	}
	return discovery.FS(os.DirFS(cfg.ArtifactsPath()), conv, discovery.WithFSLogger(logger))
}

// artifactsRoot is the directory the fs source walks.
func artifactsRoot(cfg *config.Config) string {
	rel := strings.Trim(strings.TrimPrefix(cfg.Artifacts.Root, "./"), "/")
	return filepath.Join(cfg.ArtifactsPath(), filepath.FromSlash(rel))
}

// buildApp discovers pages and assembles the application. reload may be
// nil.
func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, reload *dev.ReloadServer) (*gallery.App, error) {
	gcfg := gallery.Config{
		Title:      cfg.Server.Title,
		Convention: cfg.Convention(),
		DevMode:    cfg.IsDevelopment(),
		Logger:     logger,
		Tracing:    cfg.Tracing.Enabled,
		TracerName: cfg.Tracing.TracerName,
		Pretty:     cfg.IsDevelopment(),
	}

	reloadPath := ""
	if reload != nil {
		gcfg.Reload = reload
		reloadPath = dev.ReloadPath
	}

	if cfg.OverlayEnabled() {
		gcfg.Overlay = func(table *router.Table) layout.OverlayLoader {
			return dev.Loader(dev.ToolbarOptions{
				Pages:        table.Count(router.KindPage),
				Directories:  table.Count(router.KindDirectory),
				TemplatePath: cfg.Dev.OverlayTemplate,
				ReloadPath:   reloadPath,
			})
		}
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		gcfg.Registry = reg
		gcfg.MetricsPath = cfg.Metrics.Path
	}

	return gallery.New(ctx, gcfg, newSource(cfg, logger))
}
