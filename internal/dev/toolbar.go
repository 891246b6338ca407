package dev

import (
	"fmt"
	"os"
	"strings"

	"github.com/vango-dev/gallery/pkg/layout"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// ToolbarOptions configures the development toolbar.
type ToolbarOptions struct {
	// Pages and Directories are the route counts shown in the toolbar.
	Pages       int
	Directories int

	// TemplatePath is an optional HTML fragment rendered inside the toolbar.
	TemplatePath string

	// ReloadPath is the WebSocket endpoint. Empty disables the live
	// channel.
	ReloadPath string
}

// Toolbar is the development overlay. It implements vdom.Component.
type Toolbar struct {
	opts  ToolbarOptions
	extra string
}

// NewToolbar builds the toolbar, reading the template file if one is set.
func NewToolbar(opts ToolbarOptions) (*Toolbar, error) {
	t := &Toolbar{opts: opts}
	if opts.TemplatePath != "" {
		data, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("toolbar template: %w", err)
		}
		t.extra = string(data)
	}
	return t, nil
}

// Loader returns an overlay loader that builds the toolbar.
func Loader(opts ToolbarOptions) layout.OverlayLoader {
	return func() (vdom.Component, error) {
		return NewToolbar(opts)
	}
}

// Render implements vdom.Component.
func (t *Toolbar) Render() *vdom.VNode {
	return vdom.El("aside",
		vdom.ID("gallery-toolbar"),
		vdom.Class("gallery-toolbar"),
		vdom.StyleAttr(toolbarStyle),
		vdom.Strong(vdom.Text("gallery dev")),
		vdom.Span(vdom.Textf(" %d pages, %d directories", t.opts.Pages, t.opts.Directories)),
		vdom.If(t.extra != "", vdom.Div(vdom.Class("gallery-toolbar-extra"), vdom.Raw(t.extra))),
		vdom.P(
			vdom.ID("gallery-toolbar-stale"),
			vdom.Hidden(),
			vdom.Text("Artifacts changed. Restart the server to pick up new routes."),
		),
		vdom.If(t.opts.ReloadPath != "", vdom.Script(vdom.Raw(clientScript(t.opts.ReloadPath)))),
	)
}

const toolbarStyle = "position:fixed;bottom:12px;right:12px;z-index:99999;" +
	"padding:8px 12px;border-radius:6px;background:#111;color:#eee;" +
	"font:12px/1.4 ui-monospace,monospace;"

func clientScript(path string) string {
	return strings.ReplaceAll(clientScriptTemplate, "{{path}}", path)
}

// clientScriptTemplate connects to the reload channel and reveals the stale
// notice when a watched file changes.
const clientScriptTemplate = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '{{path}}');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            var notice = document.getElementById('gallery-toolbar-stale');
            switch (msg.type) {
                case 'stale':
                    if (notice) {
                        notice.hidden = false;
                    }
                    break;
                case 'error':
                    console.error('[gallery] watcher error:', msg.error);
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`
