// Package gallery serves a directory of pages as a website.
//
// Pages are discovered once at startup from a discovery.Source, mounted at
// URLs derived from their file locations, and rendered to HTML inside a
// shared layout. Every intermediate path segment without a page of its own
// gets a directory listing, and "/" always lists everything.
//
//	src := discovery.FS(os.DirFS("."), discovery.DefaultConvention())
//	app, err := gallery.New(ctx, gallery.Config{Title: "Notes"}, src)
//	if err != nil {
//	    return err
//	}
//	http.ListenAndServe(":3000", app)
//
// Routes never change after New returns. In development mode an optional
// overlay is attached to every page; if it cannot be loaded, pages render
// without it.
package gallery
