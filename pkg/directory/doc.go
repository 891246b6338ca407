// Package directory renders the listing shown at paths that have no page
// of their own.
//
// A Listing is built once from the discovered modules. The reserved index
// module and hidden pages are left out. A View renders the part of the
// listing below a base path, grouped by the next path segment:
//
//	listing := directory.NewListing(mods, conv)
//	view := directory.New(listing, "/guides")
package directory
