package augment

import (
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

// WithSourceCache wraps source-file retrieval with a caller-owned table
// keyed by the raw request path. A non-fresh request served from the table
// returns the identical handle without touching the underlying host. Every
// request that does reach the delegate is forced fresh, so a table miss can
// never be satisfied by a stale object the base host cached on its own.
//
// The table only grows here; eviction belongs to its owner.
func WithSourceCache(host ports.ResolvingHost, table *domain.SourceCacheTable) ports.ResolvingHost {
	return &cachingHost{ResolvingHost: host, table: table}
}

type cachingHost struct {
	ports.ResolvingHost
	table *domain.SourceCacheTable
}

func (h *cachingHost) GetSourceFile(path string, fresh bool) *domain.SourceFile {
	if !fresh {
		if f, ok := h.table.Get(path); ok {
			return f
		}
	}

	f := h.ResolvingHost.GetSourceFile(path, true)
	if f != nil {
		h.table.Put(path, f)
	}
	return f
}
