package gallery

import (
	"bytes"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/gallery/pkg/middleware"
	"github.com/vango-dev/gallery/pkg/render"
	"github.com/vango-dev/gallery/pkg/router"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// suggestions is the number of alternatives offered on a 404 page.
const suggestions = 3

func (a *App) serveRoute(route router.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.respond(w, r, route)
	}
}

func (a *App) respond(w http.ResponseWriter, r *http.Request, route router.Route) {
	middleware.Annotate(r, route.Path, route.Kind.String())

	a.render(w, r, http.StatusOK, a.pageTitle(route), route.Meta.DescriptionOf(), route.Element)
}

func (a *App) pageTitle(route router.Route) string {
	if route.Path == router.RootPath {
		return a.config.Title
	}
	return route.Title() + " · " + a.config.Title
}

// notFound serves table paths chi cannot express as patterns, then the
// 404 page.
func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if route, ok := a.table.Lookup(r.URL.Path); ok {
			a.respond(w, r, route)
			return
		}
	}

	view := &notFoundView{
		path:    r.URL.Path,
		suggest: a.table.Suggest(r.URL.Path, suggestions),
		nearest: a.table.Nearest(r.URL.Path),
	}
	a.render(w, r, http.StatusNotFound, "Not found · "+a.config.Title, "", a.shell.Wrap(view))
}

func (a *App) render(w http.ResponseWriter, r *http.Request, status int, title, description string, c vdom.Component) {
	var buf bytes.Buffer
	err := a.renderer.RenderPage(&buf, render.PageData{
		Body:        vdom.Embed(c),
		Title:       title,
		Description: description,
		StyleSheets: []string{a.assets.Asset(stylesheet)},
	})
	if err != nil {
		a.logger.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Debug("write failed", "path", r.URL.Path, "error", err)
	}
}

func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			a.logger.Warn("request", attrs...)
			return
		}
		a.logger.Debug("request", attrs...)
	})
}

type notFoundView struct {
	path    string
	suggest []string
	nearest router.Route
}

func (v *notFoundView) Render() *vdom.VNode {
	var alternatives *vdom.VNode
	if len(v.suggest) > 0 {
		alternatives = vdom.Fragment(
			vdom.P(vdom.Text("Did you mean:")),
			vdom.Ul(vdom.Class("suggestions"),
				vdom.Range(v.suggest, func(p string, _ int) *vdom.VNode {
					return vdom.Li(vdom.A(vdom.PathHref(p), vdom.Text(p)))
				}),
			),
		)
	}

	return vdom.Section(vdom.Class("not-found"),
		vdom.H1(vdom.Text("Page not found")),
		vdom.P(vdom.Text("Nothing is published at "), vdom.Code(vdom.Text(v.path)), vdom.Text(".")),
		alternatives,
		vdom.P(
			vdom.Text("Browse "),
			vdom.A(vdom.PathHref(v.nearest.Path), vdom.Text(v.nearest.Title())),
			vdom.Text(" instead."),
		),
	)
}
