package convert

import (
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

var _ ports.ModuleProcessor = Passthrough{}

// Passthrough is the processor used when no pipeline command is configured.
type Passthrough struct{}

// Process returns the resolution unchanged.
func (Passthrough) Process(_ string, res *domain.ResolvedModule) *domain.ResolvedModule {
	return res
}
