package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/internal/dev"
	"github.com/vango-dev/gallery/pkg/router"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		port    int
		host    string
		devMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery",
		Long: `Discover pages once and serve them until interrupted.

Routes are fixed at startup. In development mode a toolbar is attached to
every page, and open pages are told when artifact files change.

Examples:
  gallery serve
  gallery serve --port=8080
  gallery serve --dev --dir=./site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.dir)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if devMode {
				cfg.Env = config.EnvDevelopment
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from gallery.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from gallery.json)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Enable development mode")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg)
	if p := cfg.Path(); p != "" {
		logger.Debug("configuration loaded", "path", p)
	}

	var reload *dev.ReloadServer
	if cfg.IsDevelopment() {
		reload = dev.NewReloadServer(logger)
		defer reload.Close()
	}

	app, err := buildApp(ctx, cfg, logger, reload)
	if err != nil {
		return err
	}

	if cfg.WatchEnabled() {
		watcher, err := dev.NewWatcher(dev.WatcherConfig{
			Root:   artifactsRoot(cfg),
			Logger: logger,
		})
		if err != nil {
			warn("File watching disabled: %v", err)
		} else {
			defer watcher.Close()
			watcher.OnChange(func(path string) {
				logger.Info("artifact changed, restart to update routes", "path", path)
				reload.NotifyStale(path)
			})
			watcher.OnError(func(err error) {
				reload.NotifyError(err.Error())
			})
			go func() {
				if err := watcher.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
					logger.Error("watcher stopped", "error", err)
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printBanner()
	success("Serving %d pages and %d directories", app.Table().Count(router.KindPage), app.Table().Count(router.KindDirectory))
	info("Local:   %s", cfg.URL())
	if cfg.Metrics.Enabled {
		info("Metrics: %s%s", cfg.URL(), cfg.Metrics.Path)
	}
	if cfg.IsDevelopment() {
		info("Mode:    development")
	}
	info("")

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
