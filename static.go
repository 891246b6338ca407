package gallery

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/vango-dev/gallery/pkg/assets"
)

// StaticPrefix is the URL prefix of the built-in assets.
const StaticPrefix = "/_gallery/static/"

// StylesheetURL is the unfingerprinted URL of the built-in stylesheet.
const StylesheetURL = StaticPrefix + stylesheet

const stylesheet = "gallery.css"

//go:embed static
var staticFiles embed.FS

// newStatic fingerprints the embedded assets. In dev mode pages link the
// plain names.
func newStatic(devMode bool) (http.Handler, assets.Resolver, error) {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, nil, err
	}
	manifest, err := assets.Fingerprint(sub)
	if err != nil {
		return nil, nil, err
	}

	resolver := assets.NewResolver(manifest, StaticPrefix)
	if devMode {
		resolver = assets.NewPassthroughResolver(StaticPrefix)
	}
	return http.StripPrefix(StaticPrefix, assets.Handler(sub, manifest)), resolver, nil
}
