package assets

// Resolver turns a source asset name into the URL pages should link to.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver returns a Resolver that links fingerprinted names below
// prefix.
//
// Example:
//
//	m := assets.NewManifest()
//	m.Set("gallery.css", "gallery.1a2b3c4d.css")
//	assets.NewResolver(m, "/_gallery/static/").Asset("gallery.css") // "/_gallery/static/gallery.1a2b3c4d.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns a Resolver that links source names
// unchanged below prefix. It is used in development, where nothing
// should be cached.
//
// Example:
//
//	assets.NewPassthroughResolver("/_gallery/static/").Asset("gallery.css") // "/_gallery/static/gallery.css"
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
