package augment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/engine/augment"
)

func TestWithFileVersions_AssignsOnFirstEnumeration(t *testing.T) {
	base := &lookupHost{files: []*domain.SourceFile{
		{Path: "/src/a.ts", Text: "const a = 1;"},
		{Path: "/src/b.ts", Text: "const b = 2;"},
	}}
	host := augment.WithFileVersions(augment.Normalize(base, nil))

	files := host.SourceFiles()
	require.Len(t, files, 2)
	assert.NotEmpty(t, files[0].Version)
	assert.NotEmpty(t, files[1].Version)
	assert.NotEqual(t, files[0].Version, files[1].Version)

	// Handles keep their identity; versioning mutates in place.
	assert.Same(t, base.files[0], files[0])
}

func TestWithFileVersions_NeverOverwrites(t *testing.T) {
	f := &domain.SourceFile{Path: "/src/a.ts", Text: "const a = 1;"}
	base := &lookupHost{files: []*domain.SourceFile{f}}
	host := augment.WithFileVersions(augment.Normalize(base, nil))

	first := host.SourceFiles()[0].Version

	// Text changes after the first enumeration must not disturb the version.
	f.Text = "const a = 2;"
	assert.Equal(t, first, host.SourceFiles()[0].Version)
}

func TestContentVersion(t *testing.T) {
	assert.Equal(t, augment.ContentVersion("const a = 1;"), augment.ContentVersion("const a = 1;"))
	assert.NotEqual(t, augment.ContentVersion("const a = 1;"), augment.ContentVersion("const a = 2;"))

	// Stability anchor: an empty text always versions the same way.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		augment.ContentVersion(""))
}
