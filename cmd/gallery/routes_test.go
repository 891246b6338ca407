package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/pkg/router"
)

func sampleRoutes() []router.Route {
	return []router.Route{
		{Path: "/", Kind: router.KindDirectory, BasePath: "/"},
		{Path: "/guides/intro", Kind: router.KindPage, Source: "artifacts/guides/intro.md"},
		{Path: "/guides", Kind: router.KindDirectory, BasePath: "/guides"},
	}
}

func TestWriteRoutesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRoutesJSON(&buf, sampleRoutes()); err != nil {
		t.Fatalf("writeRoutesJSON() error = %v", err)
	}

	var got []routeJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Kind != "page" || got[1].Title != "intro" || got[1].Source != "artifacts/guides/intro.md" {
		t.Errorf("got[1] = %+v", got[1])
	}
	if got[0].Title != "Index" {
		t.Errorf("root title = %q, want %q", got[0].Title, "Index")
	}
	if strings.Contains(buf.String(), `"source": ""`) {
		t.Error("empty source should be omitted")
	}
}

func TestRoutesTable(t *testing.T) {
	out := routesTable(sampleRoutes()).String()
	for _, want := range []string{"PATH", "/guides/intro", "directory", "artifacts/guides/intro.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestArtifactsRoot(t *testing.T) {
	tests := []struct {
		dir  string
		root string
		want string
	}{
		{"site", "artifacts/", filepath.Join("site", "artifacts")},
		{"site", "./content/", filepath.Join("site", "content")},
		{"site", "", "site"},
	}
	for _, tt := range tests {
		cfg := config.New()
		cfg.Artifacts.Dir = tt.dir
		cfg.Artifacts.Root = tt.root
		if got := artifactsRoot(cfg); got != tt.want {
			t.Errorf("artifactsRoot(%q, %q) = %q, want %q", tt.dir, tt.root, got, tt.want)
		}
	}
}
