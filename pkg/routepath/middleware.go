package routepath

import (
	"log/slog"
	"net/http"
)

// Middleware redirects requests for non-canonical paths to their canonical
// form and rejects paths that cannot be canonicalized with 400. GET and
// HEAD get a 301, other methods a 308 so the method is preserved.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := Canonicalize(r.URL.EscapedPath())
			if err != nil {
				logger.Debug("rejected request path", "path", r.URL.EscapedPath(), "error", err)
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			if !res.Changed {
				next.ServeHTTP(w, r)
				return
			}

			res.Query = r.URL.RawQuery
			code := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				code = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, res.URL(), code)
		})
	}
}
