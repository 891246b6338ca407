// Package errors provides structured, actionable error messages for gallery.
//
// Every error carries a code (e.g. "E201") that maps to a registered
// template with a category, a short message and a longer explanation.
// Call sites add detail, a suggestion and the wrapped cause:
//
//	err := errors.New("E201").
//	    WithDetail("source ./artifacts/foo.md registered twice").
//	    WithSuggestion("Remove one of the registrations")
//
//	fmt.Println(err.Format())
//
// # Error Categories
//
//   - config: gallery.json or environment problems
//   - discovery: page sources that cannot be enumerated or read
//   - page: page files that cannot be parsed
//   - cli: command-line usage errors
package errors
