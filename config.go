package gallery

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/gallery/pkg/discovery"
	"github.com/vango-dev/gallery/pkg/layout"
	"github.com/vango-dev/gallery/pkg/router"
)

// OverlayFunc returns the loader of the development overlay. It receives
// the synthesized route table and is called at most once.
type OverlayFunc func(table *router.Table) layout.OverlayLoader

// Config configures an App.
type Config struct {
	// Title is the site title. Default: "Gallery".
	Title string

	// Convention describes source paths. Default:
	// discovery.DefaultConvention().
	Convention discovery.Convention

	// PagePrecedence lets a page replace a directory synthesized at its
	// path earlier in discovery. By default the first entry keeps the path.
	PagePrecedence bool

	// DevMode enables development-only features: the overlay and the
	// reload endpoint.
	DevMode bool

	// Overlay builds the development overlay. Ignored unless DevMode.
	Overlay OverlayFunc

	// Reload is mounted at the reload endpoint in development mode.
	Reload http.Handler

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Registry enables Prometheus metrics, exposed at MetricsPath.
	Registry *prometheus.Registry

	// MetricsPath is where metrics are served. Default: "/metrics".
	MetricsPath string

	// Tracing enables an OpenTelemetry span per request.
	Tracing bool

	// TracerName is the tracer name. Default: "gallery".
	TracerName string

	// TracerProvider overrides the global tracer provider.
	TracerProvider trace.TracerProvider

	// Pretty enables indented HTML output.
	Pretty bool
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "Gallery"
	}
	if c.Convention == (discovery.Convention{}) {
		c.Convention = discovery.DefaultConvention()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
	if c.TracerName == "" {
		c.TracerName = "gallery"
	}
	return c
}
