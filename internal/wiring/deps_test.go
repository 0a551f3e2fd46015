package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/app"
	_ "go.skein.dev/skein/internal/wiring"
)

// TestComponentsResolve exercises the full dependency graph: every node the
// components transitively depend on must be registered and constructible.
func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Watcher)
	require.NotNil(t, components.Progress)
}
