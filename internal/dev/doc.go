// Package dev provides the development-only overlay: a toolbar rendered on
// every page and a WebSocket channel that tells open pages when the
// artifacts they were built from have changed.
//
// Routes are synthesized once at startup, so a change is never applied
// live. The toolbar shows a "restart to pick up changes" notice instead.
//
// # Architecture
//
//   - Watcher: monitors the artifacts directory with fsnotify
//   - ReloadServer: fans change notifications out to browsers
//   - Toolbar: the overlay component, with its client script
//
// # Protocol
//
// The browser connects to /_gallery/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "hello", "id": "..."}     // Sent once on connect
//	{"type": "stale", "file": "..."}   // A watched file changed
//	{"type": "error", "error": "..."}  // The watcher failed
package dev
