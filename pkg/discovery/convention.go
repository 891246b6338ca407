package discovery

import (
	"path"
	"strings"

	"github.com/vango-dev/gallery/internal/errors"
)

// DefaultIndex is the reserved logical path of the listing page.
const DefaultIndex = "directory"

// Convention describes the layout of page sources.
type Convention struct {
	// Root is the prefix every source path starts with (e.g. "./artifacts/").
	Root string

	// Ext is the extension every source path ends with (e.g. ".md").
	// An empty Ext strips whatever extension the last segment has.
	Ext string

	// Index is the reserved logical path that never becomes a route.
	Index string
}

// DefaultConvention returns the convention used for artifact directories.
func DefaultConvention() Convention {
	return Convention{
		Root:  "artifacts/",
		Index: DefaultIndex,
	}
}

// LogicalPath strips the root prefix and extension from a source path.
// Backslashes are treated as separators.
func (c Convention) LogicalPath(source string) string {
	p := strings.ReplaceAll(source, "\\", "/")
	p = strings.TrimPrefix(p, c.Root)
	if c.Ext != "" {
		return strings.TrimSuffix(p, c.Ext)
	}
	return strings.TrimSuffix(p, path.Ext(p))
}

// IsIndex reports whether source is the reserved listing page.
func (c Convention) IsIndex(source string) bool {
	return c.LogicalPath(source) == c.Index
}

// Validate checks that source lives under the convention and yields a
// well-formed logical path.
func (c Convention) Validate(source string) error {
	p := strings.ReplaceAll(source, "\\", "/")

	if !strings.HasPrefix(p, c.Root) {
		return errors.New("E202").
			WithDetailf("%s does not start with %q", source, c.Root)
	}
	if c.Ext != "" && !strings.HasSuffix(p, c.Ext) {
		return errors.New("E202").
			WithDetailf("%s does not end with %q", source, c.Ext)
	}

	logical := c.LogicalPath(source)
	if logical == "" {
		return errors.New("E202").
			WithDetailf("%s has an empty logical path", source)
	}
	for _, seg := range strings.Split(logical, "/") {
		switch seg {
		case "", ".", "..":
			return errors.New("E202").
				WithDetailf("%s has an invalid path segment %q", source, seg)
		}
	}
	return nil
}
