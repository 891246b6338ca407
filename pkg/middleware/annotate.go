package middleware

import (
	"context"
	"net/http"
	"sync"
)

// Unmatched is the route label of requests no handler annotated.
const Unmatched = "unmatched"

// RouteInfo is the route a request was served by.
type RouteInfo struct {
	mu    sync.Mutex
	route string
	kind  string
}

// Get returns the route and kind, or Unmatched and "" when unset.
func (i *RouteInfo) Get() (route, kind string) {
	if i == nil {
		return Unmatched, ""
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.route == "" {
		return Unmatched, i.kind
	}
	return i.route, i.kind
}

type routeInfoKey struct{}

// withRouteInfo returns r carrying a RouteInfo, reusing one placed by an
// outer middleware.
func withRouteInfo(r *http.Request) (*http.Request, *RouteInfo) {
	if info := RouteInfoFrom(r.Context()); info != nil {
		return r, info
	}
	info := &RouteInfo{}
	return r.WithContext(context.WithValue(r.Context(), routeInfoKey{}, info)), info
}

// RouteInfoFrom returns the RouteInfo carried by ctx, or nil.
func RouteInfoFrom(ctx context.Context) *RouteInfo {
	info, _ := ctx.Value(routeInfoKey{}).(*RouteInfo)
	return info
}

// Annotate records the route that served r. It is a no-op when neither
// Metrics nor Tracing wraps the handler.
func Annotate(r *http.Request, route, kind string) {
	info := RouteInfoFrom(r.Context())
	if info == nil {
		return
	}
	info.mu.Lock()
	info.route = route
	info.kind = kind
	info.mu.Unlock()
}
