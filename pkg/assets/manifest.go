// Package assets fingerprints static files for long-lived caching.
//
// Fingerprint hashes every file of an fs.FS and maps its name to a name
// that carries the hash:
//
//	gallery.css -> gallery.3f9a1c2e.css
//
// Handler serves both names. Only fingerprinted names are marked
// immutable, so a changed file is fetched again under its new name.
//
//	manifest, _ := assets.Fingerprint(static)
//	resolver := assets.NewResolver(manifest, "/_gallery/static/")
//	vdom.Link(vdom.Rel("stylesheet"), vdom.Href(resolver.Asset("gallery.css")))
package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// hashLen is the number of hex digits kept from the content hash.
const hashLen = 8

// Manifest maps source asset names to fingerprinted names. It is safe for
// concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
	sources map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
		sources: make(map[string]string),
	}
}

// Fingerprint hashes every regular file in fsys. Hidden files are skipped.
func Fingerprint(fsys fs.FS) (*Manifest, error) {
	m := NewManifest()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && p != "." {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		m.Set(p, FingerprintName(p, data))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fingerprint assets: %w", err)
	}
	return m, nil
}

// FingerprintName inserts the content hash of data before the extension
// of name.
func FingerprintName(name string, data []byte) string {
	sum := fmt.Sprintf("%016x", xxhash.Sum64(data))[:hashLen]
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + sum + ext
}

// Resolve returns the fingerprinted name of source, or source unchanged
// when it is not in the manifest.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Source returns the source name of a fingerprinted name.
func (m *Manifest) Source(fingerprinted string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src, ok := m.sources[fingerprinted]
	return src, ok
}

// Has reports whether the manifest contains source.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or updates an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[source]; ok {
		delete(m.sources, old)
	}
	m.entries[source] = resolved
	m.sources[resolved] = source
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// All returns a copy of all entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}
