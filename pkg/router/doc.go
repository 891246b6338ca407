// Package router turns discovered page modules into a route table.
//
// Every module is mounted at "/" followed by its logical path. Each proper
// ancestor of a logical path that has no page of its own gets a synthesized
// directory entry, so the table never has gaps:
//
//	artifacts/
//	├── directory.tsx      → (index, not routed)
//	├── about.tsx          → /about
//	└── guides/
//	    └── setup.tsx      → /guides/setup
//	                         /guides        (directory, base /guides)
//	                         /              (directory, always present)
//
// Synthesis is a pure function of the module collection. It performs no I/O
// and has no failure mode.
//
// # Collisions
//
// The first entry to claim a path keeps it. A page discovered after a
// directory was synthesized at its path is dropped, and between two pages
// the first one discovered wins. WithPagePrecedence lets a later page
// replace a synthesized directory in place. The root directory is never
// replaced.
//
// # Usage
//
//	table := router.Synthesize(mods,
//	    router.WithConvention(conv),
//	    router.WithLayout(shell.Wrap),
//	    router.WithDirectory(func(base string) vdom.Component {
//	        return directory.New(listing, base)
//	    }),
//	)
//	for _, r := range table.Routes() {
//	    mux.Get(r.Path, handler(r))
//	}
package router
