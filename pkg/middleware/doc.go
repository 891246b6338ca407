// Package middleware provides the HTTP middleware the gallery server runs
// every request through.
//
// # Route labels
//
// Handlers report which route served a request with Annotate. Metrics and
// tracing read the annotation after the handler returns, so label
// cardinality stays bounded by the route table:
//
//	func(w http.ResponseWriter, r *http.Request) {
//	    middleware.Annotate(r, route.Path, route.Kind.String())
//	    ...
//	}
//
// Requests nobody annotates are labelled "unmatched".
//
// # Prometheus Metrics
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	mux.Use(m.Handler)
//
// Metrics collected:
//   - gallery_http_requests_total{route,kind,code}
//   - gallery_http_request_duration_seconds{route,kind}
//   - gallery_http_requests_in_flight
//   - gallery_routes{kind}
//
// # OpenTelemetry
//
//	mux.Use(middleware.Tracing(middleware.WithTracerName("gallery")))
//
// Every request gets a server span named after its route. Spans for 5xx
// responses are marked as errors.
package middleware
