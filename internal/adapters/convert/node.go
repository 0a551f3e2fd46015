package convert

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skein.dev/skein/internal/adapters/logger"
	"go.skein.dev/skein/internal/core/ports"
)

const NodeID graft.ID = "adapter.convert"

func init() {
	// The pipeline is registered without a command; the app swaps in a
	// configured Pipeline once the project config is known.
	graft.Register(graft.Node[ports.ModuleProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(_ context.Context) (ports.ModuleProcessor, error) {
			return Passthrough{}, nil
		},
	})
}
