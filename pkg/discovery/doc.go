// Package discovery enumerates the page modules a gallery serves.
//
// A Module pairs a source path with a renderable component and optional
// metadata. Modules is the ordered, source-unique mapping that the route
// synthesizer consumes. Sources produce it once at startup:
//
//   - Static: a registry declared in code
//   - FS: a walk over an fs.FS (embed.FS, os.DirFS)
//   - S3: the objects under a prefix of an S3 bucket
//
// A Convention describes where sources live: the root prefix and extension
// that are stripped to obtain a module's logical path, and the reserved
// index name.
//
//	conv := discovery.Convention{Root: "artifacts/", Ext: ".md", Index: "directory"}
//	conv.LogicalPath("artifacts/group/item.md") // "group/item"
package discovery
