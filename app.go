package gallery

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/gallery/internal/dev"
	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/assets"
	"github.com/vango-dev/gallery/pkg/directory"
	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/layout"
	"github.com/vango-dev/gallery/pkg/middleware"
	"github.com/vango-dev/gallery/pkg/render"
	"github.com/vango-dev/gallery/pkg/router"
	"github.com/vango-dev/gallery/pkg/routepath"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// App serves a fixed route table over HTTP.
type App struct {
	config   Config
	logger   *slog.Logger
	listing  *directory.Listing
	shell    *layout.Layout
	table    *router.Table
	renderer *render.Renderer
	metrics  *middleware.Metrics
	static   http.Handler
	assets   assets.Resolver
	handler  http.Handler
}

// New discovers pages from src once and builds the route table.
//
// Discovery failures are returned as E205 unless src reports a more
// specific code. A source path outside cfg.Convention is E202.
func New(ctx context.Context, cfg Config, src discovery.Source) (*App, error) {
	cfg = cfg.withDefaults()

	mods, err := src.Discover(ctx)
	if err != nil {
		return nil, errors.FromError(err, "E205")
	}
	if err := mods.Validate(cfg.Convention); err != nil {
		return nil, err
	}

	static, resolver, err := newStatic(cfg.DevMode)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   cfg,
		logger:   cfg.Logger,
		listing:  directory.NewListing(mods, cfg.Convention),
		shell:    layout.New(nil),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: cfg.Pretty}),
		static:   static,
		assets:   resolver,
	}

	opts := []router.Option{
		router.WithConvention(cfg.Convention),
		router.WithLayout(a.shell.Wrap),
		router.WithDirectory(func(base string) vdom.Component {
			return directory.New(a.listing, base)
		}),
	}
	if cfg.PagePrecedence {
		opts = append(opts, router.WithPagePrecedence())
	}
	a.table = router.Synthesize(mods, opts...)

	a.shell.SetOverlay(layout.ResolveOverlay(cfg.DevMode, a.overlayLoader(), a.logger))

	if cfg.Registry != nil {
		a.metrics = middleware.NewMetrics(middleware.WithRegistry(cfg.Registry))
		a.metrics.SetRoutes(router.KindPage.String(), a.table.Count(router.KindPage))
		a.metrics.SetRoutes(router.KindDirectory.String(), a.table.Count(router.KindDirectory))
	}

	a.handler = a.mount()

	a.logger.Info("routes synthesized",
		"modules", mods.Len(),
		"pages", a.table.Count(router.KindPage),
		"directories", a.table.Count(router.KindDirectory),
		"overlay", a.shell.HasOverlay(),
	)
	return a, nil
}

// overlayLoader defers cfg.Overlay to load time so a panicking factory is
// recovered like a panicking loader.
func (a *App) overlayLoader() layout.OverlayLoader {
	if a.config.Overlay == nil {
		return nil
	}
	return func() (vdom.Component, error) {
		return a.config.Overlay(a.table)()
	}
}

func (a *App) mount() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.logRequests)
	r.Use(chimw.Recoverer)
	r.Use(routepath.Middleware(a.logger))
	if a.metrics != nil {
		r.Use(a.metrics.Handler)
	}
	if a.config.Tracing {
		r.Use(middleware.Tracing(
			middleware.WithTracerName(a.config.TracerName),
			middleware.WithTracerProvider(a.config.TracerProvider),
		))
	}
	r.Use(chimw.GetHead)

	reserved := map[string]bool{}
	if a.metrics != nil {
		r.Method(http.MethodGet, a.config.MetricsPath, promhttp.HandlerFor(a.config.Registry, promhttp.HandlerOpts{}))
		reserved[a.config.MetricsPath] = true
	}
	if a.config.DevMode && a.config.Reload != nil {
		r.Handle(dev.ReloadPath, a.config.Reload)
		reserved[dev.ReloadPath] = true
	}
	r.Handle(StaticPrefix+"*", a.static)

	for _, route := range a.table.Routes() {
		switch {
		case reserved[route.Path] || strings.HasPrefix(route.Path, StaticPrefix):
			a.logger.Warn("route shadowed by built-in endpoint", "path", route.Path, "source", route.Source)
		case strings.ContainsAny(route.Path, "{}*"):
			// Served by the table lookup in notFound.
		default:
			r.Get(route.Path, a.serveRoute(route))
		}
	}

	r.NotFound(a.notFound)
	return r
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// Routes returns the route table in synthesis order.
func (a *App) Routes() []router.Route {
	return a.table.Routes()
}

// Table returns the route table.
func (a *App) Table() *router.Table {
	return a.table
}

// Title returns the site title.
func (a *App) Title() string {
	return a.config.Title
}
