package router

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n route paths that look like path, closest first.
// Paths further than a third of the longer length away are not suggested.
func (t *Table) Suggest(path string, n int) []string {
	if n <= 0 {
		return nil
	}

	type candidate struct {
		path  string
		dist  int
		order int
	}

	target := strings.ToLower(strings.TrimSuffix(path, "/"))
	var cands []candidate
	for i, r := range t.routes {
		if r.Path == path {
			continue
		}
		d := levenshtein.ComputeDistance(target, strings.ToLower(r.Path))
		if d > maxDistance(target, r.Path) {
			continue
		}
		cands = append(cands, candidate{path: r.Path, dist: d, order: i})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].order < cands[j].order
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.path
	}
	return out
}

// Nearest returns the deepest route that is an ancestor of path. The root
// always qualifies.
func (t *Table) Nearest(path string) Route {
	p := strings.TrimSuffix(path, "/")
	for {
		i := strings.LastIndexByte(p, '/')
		if i <= 0 {
			break
		}
		p = p[:i]
		if r, ok := t.Lookup(p); ok {
			return r
		}
	}
	r, _ := t.Lookup(RootPath)
	return r
}

func maxDistance(a, b string) int {
	n := max(len(a), len(b)) / 3
	return max(n, 1)
}
