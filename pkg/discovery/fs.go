package discovery

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/page"
)

// FSSource discovers page files in an fs.FS.
type FSSource struct {
	fsys   fs.FS
	conv   Convention
	logger *slog.Logger
}

// FSOption configures an FSSource.
type FSOption func(*FSSource)

// WithFSLogger sets the logger used for skipped files.
func WithFSLogger(logger *slog.Logger) FSOption {
	return func(s *FSSource) {
		s.logger = logger
	}
}

// FS returns a Source that walks fsys below the convention root.
// A missing root directory yields an empty collection.
//
// Example:
//
//	src := discovery.FS(os.DirFS("site"), discovery.DefaultConvention())
//	mods, err := src.Discover(ctx)
func FS(fsys fs.FS, conv Convention, opts ...FSOption) *FSSource {
	s := &FSSource{
		fsys:   fsys,
		conv:   conv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "discovery", "source", "fs")
	return s
}

// Discover implements Source. Files are visited in lexical order.
func (s *FSSource) Discover(ctx context.Context) (Modules, error) {
	root := rootDir(s.conv.Root)

	var mods Modules
	err := fs.WalkDir(s.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := d.Name()
		if d.IsDir() {
			if p != root && skipName(name) {
				return fs.SkipDir
			}
			return nil
		}
		if skipName(name) || !accepts(s.conv, name) {
			s.logger.Debug("skipping file", "path", p)
			return nil
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return err
		}
		pg, err := page.Parse(p, data)
		if err != nil {
			return err
		}

		rel := p
		if root != "." {
			rel = strings.TrimPrefix(p, root+"/")
		}
		return mods.Add(Module{
			Source:    sourcePath(s.conv, rel),
			Component: pg,
			Meta:      pg.Meta,
		})
	})

	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) && !hasRoot(s.fsys, root) {
			s.logger.Warn("artifacts root not found, serving an empty gallery", "root", root)
			return Modules{}, nil
		}
		return Modules{}, errors.FromError(err, "E205")
	}

	s.logger.Debug("discovered pages", "count", mods.Len())
	return mods, nil
}

// rootDir converts a convention root ("./artifacts/") to an fs.FS path.
func rootDir(root string) string {
	root = strings.TrimPrefix(root, "./")
	root = strings.Trim(root, "/")
	if root == "" {
		return "."
	}
	return path.Clean(root)
}

func hasRoot(fsys fs.FS, root string) bool {
	_, err := fs.Stat(fsys, root)
	return err == nil
}

// skipName reports whether a file or directory is private: names starting
// with "_" are partials and names starting with "." are hidden.
func skipName(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

// accepts reports whether a file name matches the convention's extension,
// or, with no extension configured, any supported page format.
func accepts(conv Convention, name string) bool {
	if conv.Ext != "" {
		if !strings.HasSuffix(name, conv.Ext) {
			return false
		}
	}
	_, ok := page.FormatOf(name)
	return ok
}
