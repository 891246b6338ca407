package discovery

import "context"

// Source produces the module collection. It is called once at startup.
type Source interface {
	Discover(ctx context.Context) (Modules, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Modules, error)

// Discover implements Source.
func (f SourceFunc) Discover(ctx context.Context) (Modules, error) {
	return f(ctx)
}

// Static returns a Source that always yields mods.
func Static(mods Modules) Source {
	return SourceFunc(func(context.Context) (Modules, error) {
		return mods, nil
	})
}

// sourcePath rebuilds a convention-rooted source path from a path
// relative to the convention root.
func sourcePath(conv Convention, rel string) string {
	return conv.Root + rel
}
