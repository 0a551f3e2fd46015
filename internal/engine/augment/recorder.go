package augment

import (
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

// WithDependencyRecording wraps module-name resolution so every successful
// resolution adds an edge from the (normalized) containing file to the
// resolved target in the caller-owned graph. The underlying results are
// returned unmodified, in input order and cardinality; callers index them
// positionally against their name batch.
//
// Recording is best-effort bookkeeping: a malformed path skips the edge, and
// nothing recorded (or not recorded) ever withholds a resolution result. The
// recorder trusts that every name it sees was actually referenced by the
// containing file; it performs no verification of its own.
func WithDependencyRecording(host ports.ResolvingHost, graph *domain.DependencyGraph) ports.ResolvingHost {
	return &recordingHost{ResolvingHost: host, graph: graph}
}

type recordingHost struct {
	ports.ResolvingHost
	graph *domain.DependencyGraph
}

func (h *recordingHost) ResolveModuleNames(names []string, containingFile string) []*domain.ResolvedModule {
	results := h.ResolvingHost.ResolveModuleNames(names, containingFile)

	from := domain.NormalizePath(containingFile)
	if from == "" {
		return results
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		to := domain.NormalizePath(res.Path)
		if to == "" {
			continue
		}
		h.graph.AddEdge(from, to)
	}
	return results
}
