// Package page parses artifact files into renderable pages.
//
// A page file is Markdown (.md, .markdown) or HTML (.html, .htm), optionally
// starting with a YAML front matter block:
//
//	---
//	title: Getting started
//	description: First steps
//	category: guide
//	order: 1
//	hidden: false
//	---
//	# Getting started
//
// Missing titles and descriptions are filled from the document itself: the
// first level-one heading of a Markdown page, or the <title> and
// <meta name="description"> of an HTML page.
package page
