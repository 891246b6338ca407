package page

import "path"

// Meta is the optional metadata a page carries.
type Meta struct {
	Title       string
	Description string
	Hidden      bool
	Category    string

	// Order is a sorting hint for directory listings; nil sorts last.
	Order *int
}

// IsHidden reports whether the page is excluded from directory listings.
func (m *Meta) IsHidden() bool {
	return m != nil && m.Hidden
}

// TitleOr returns the title, or fallback when there is none.
func (m *Meta) TitleOr(fallback string) string {
	if m == nil || m.Title == "" {
		return fallback
	}
	return m.Title
}

// DescriptionOf returns the description of m, or "" for nil.
func (m *Meta) DescriptionOf() string {
	if m == nil {
		return ""
	}
	return m.Description
}

// OrderOf returns the order hint and whether one is set.
func (m *Meta) OrderOf() (int, bool) {
	if m == nil || m.Order == nil {
		return 0, false
	}
	return *m.Order, true
}

// DefaultTitle derives a title from a logical path: its last segment.
func DefaultTitle(logicalPath string) string {
	if logicalPath == "" {
		return ""
	}
	return path.Base(logicalPath)
}

// Int returns a pointer to v, for building Meta literals.
func Int(v int) *int {
	return &v
}
