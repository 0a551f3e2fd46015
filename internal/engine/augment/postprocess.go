package augment

import (
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

// WithModuleProcessing wraps both resolution surfaces so every successful
// resolution is routed through the processor exactly once per resolution
// call before being returned. Misses are never handed to the processor and
// pass through unchanged. The processor itself must tolerate seeing the same
// target repeatedly, since distinct containing files resolve to it again.
func WithModuleProcessing(host ports.ResolvingHost, proc ports.ModuleProcessor) ports.ResolvingHost {
	return &processingHost{ResolvingHost: host, proc: proc}
}

type processingHost struct {
	ports.ResolvingHost
	proc ports.ModuleProcessor
}

func (h *processingHost) ResolveModuleNames(names []string, containingFile string) []*domain.ResolvedModule {
	results := h.ResolvingHost.ResolveModuleNames(names, containingFile)
	for i, res := range results {
		if res == nil {
			continue
		}
		results[i] = h.proc.Process(names[i], res)
	}
	return results
}

func (h *processingHost) ResolveTypeReferenceDirectives(names []string, containingFile string) []*domain.ResolvedTypeRef {
	results := h.ResolvingHost.ResolveTypeReferenceDirectives(names, containingFile)
	for i, ref := range results {
		if ref == nil {
			continue
		}
		// The two surfaces share one processor; a directive target is handed
		// over in module form and mapped back afterwards.
		processed := h.proc.Process(names[i], &domain.ResolvedModule{Path: ref.Path, External: true})
		if processed == nil {
			continue
		}
		results[i] = &domain.ResolvedTypeRef{Path: processed.Path}
	}
	return results
}
