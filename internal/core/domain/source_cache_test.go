package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skein.dev/skein/internal/core/domain"
)

func TestSourceCacheTable(t *testing.T) {
	table := domain.NewSourceCacheTable()

	_, ok := table.Get("/src/app.ts")
	assert.False(t, ok)

	first := &domain.SourceFile{Path: "/src/app.ts", Text: "export {}"}
	table.Put("/src/app.ts", first)

	got, ok := table.Get("/src/app.ts")
	assert.True(t, ok)
	assert.Same(t, first, got)

	// Overwrite replaces the previous handle.
	second := &domain.SourceFile{Path: "/src/app.ts", Text: "export const x = 1"}
	table.Put("/src/app.ts", second)
	got, _ = table.Get("/src/app.ts")
	assert.Same(t, second, got)
	assert.Equal(t, 1, table.Len())

	table.Evict("/src/app.ts")
	_, ok = table.Get("/src/app.ts")
	assert.False(t, ok)
}
