package assets

import (
	"io/fs"
	"net/http"
	"strings"
)

const (
	immutableCache = "public, max-age=31536000, immutable"
	revalidate     = "no-cache"
)

// Handler serves the files of fsys under both their source and
// fingerprinted names. Mount it behind http.StripPrefix.
func Handler(fsys fs.FS, m *Manifest) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		src, ok := m.Source(name)
		if !ok {
			w.Header().Set("Cache-Control", revalidate)
			files.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", immutableCache)
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/" + src
		r2.URL.RawPath = ""
		files.ServeHTTP(w, r2)
	})
}
