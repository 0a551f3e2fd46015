package domain

import (
	"fmt"
	"io"
	"sort"
)

// DependencyGraph maps a normalized file path to the set of normalized paths
// it directly imports. The graph is owned by the build-tool layer and passed
// to the recording augmentation by reference; it grows monotonically during a
// host's lifetime and no edge is ever removed.
//
// All mutation happens on the single thread driving compilation, so the
// graph carries no locking.
type DependencyGraph struct {
	edges map[InternedString]map[InternedString]struct{}
}

// NewDependencyGraph creates an empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[InternedString]map[InternedString]struct{}),
	}
}

// AddEdge records that from imports to. Re-adding an existing edge is a
// no-op; paths are interned since the same file shows up in many edges.
func (g *DependencyGraph) AddEdge(from, to string) {
	f := NewInternedString(from)
	set, ok := g.edges[f]
	if !ok {
		set = make(map[InternedString]struct{})
		g.edges[f] = set
	}
	set[NewInternedString(to)] = struct{}{}
}

// HasEdge reports whether from is recorded as importing to.
func (g *DependencyGraph) HasEdge(from, to string) bool {
	set, ok := g.edges[NewInternedString(from)]
	if !ok {
		return false
	}
	_, ok = set[NewInternedString(to)]
	return ok
}

// Imports returns the sorted set of paths from directly imports.
func (g *DependencyGraph) Imports(from string) []string {
	set, ok := g.edges[NewInternedString(from)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for to := range set {
		out = append(out, to.String())
	}
	sort.Strings(out)
	return out
}

// Files returns the sorted list of containing files that have recorded edges.
func (g *DependencyGraph) Files() []string {
	out := make([]string, 0, len(g.edges))
	for from := range g.edges {
		out = append(out, from.String())
	}
	sort.Strings(out)
	return out
}

// EdgeCount returns the total number of recorded edges.
func (g *DependencyGraph) EdgeCount() int {
	n := 0
	for _, set := range g.edges {
		n += len(set)
	}
	return n
}

// Render writes the graph in a deterministic "from -> to" text form, one
// edge per line, sorted by containing file then target.
func (g *DependencyGraph) Render(w io.Writer) error {
	for _, from := range g.Files() {
		for _, to := range g.Imports(from) {
			if _, err := fmt.Fprintf(w, "%s -> %s\n", from, to); err != nil {
				return err
			}
		}
	}
	return nil
}
