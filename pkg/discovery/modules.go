package discovery

import (
	"sort"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/page"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Module is one discovered page.
type Module struct {
	// Source is the path the module was discovered at.
	Source string

	// Component renders the page content.
	Component vdom.Component

	// Meta is the optional page metadata.
	Meta *page.Meta
}

// Modules is an ordered collection of modules, unique by source.
// The zero value is empty and ready to use.
type Modules struct {
	list  []Module
	index map[string]int
}

// NewModules builds a collection in argument order.
func NewModules(mods ...Module) (Modules, error) {
	var m Modules
	for _, mod := range mods {
		if err := m.Add(mod); err != nil {
			return Modules{}, err
		}
	}
	return m, nil
}

// MustModules is like NewModules but panics on duplicate sources.
// Intended for registries declared in code.
func MustModules(mods ...Module) Modules {
	m, err := NewModules(mods...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromMap builds a collection from a source-keyed map, ordered by source
// the way a directory glob is. Keys override Module.Source.
func FromMap(mods map[string]Module) Modules {
	sources := make([]string, 0, len(mods))
	for source := range mods {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var m Modules
	for _, source := range sources {
		mod := mods[source]
		mod.Source = source
		// Map keys are unique, so Add cannot fail.
		_ = m.Add(mod)
	}
	return m
}

// Add appends a module. Adding a source twice is an error.
func (m *Modules) Add(mod Module) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, exists := m.index[mod.Source]; exists {
		return errors.New("E201").
			WithDetailf("%s registered twice", mod.Source).
			WithSuggestion("Remove one of the registrations")
	}
	m.index[mod.Source] = len(m.list)
	m.list = append(m.list, mod)
	return nil
}

// Len returns the number of modules.
func (m Modules) Len() int {
	return len(m.list)
}

// All returns the modules in order. The slice is a copy.
func (m Modules) All() []Module {
	out := make([]Module, len(m.list))
	copy(out, m.list)
	return out
}

// Get returns the module registered at source.
func (m Modules) Get(source string) (Module, bool) {
	i, ok := m.index[source]
	if !ok {
		return Module{}, false
	}
	return m.list[i], true
}

// Validate checks every source against conv.
func (m Modules) Validate(conv Convention) error {
	for _, mod := range m.list {
		if err := conv.Validate(mod.Source); err != nil {
			return err
		}
	}
	return nil
}
