package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skein.dev/skein/internal/adapters/fs"
	"go.skein.dev/skein/internal/core/domain"
)

// projectFixture lays out a small script project:
//
//	src/app.ts         imports ./util and pkg-a
//	src/util.ts
//	node_modules/pkg-a/index.d.ts
//	node_modules/@types/runner/index.d.ts
func projectFixture(t *testing.T) *domain.Project {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app.ts"), `import { u } from "./util";`+"\n"+`import a from "pkg-a";`)
	writeFile(t, filepath.Join(root, "src", "util.ts"), "export const u = 1;")
	writeFile(t, filepath.Join(root, "node_modules", "pkg-a", "index.d.ts"), "declare const a: number; export default a;")
	writeFile(t, filepath.Join(root, "node_modules", "@types", "runner", "index.d.ts"), "declare function run(): void;")

	return &domain.Project{
		Root:   root,
		Ignore: []string{"node_modules"},
	}
}

func TestScriptHost_SourceFiles(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	files := host.SourceFiles()
	require.Len(t, files, 2)
	assert.Equal(t, domain.NormalizePath(filepath.Join(project.Root, "src", "app.ts")), files[0].Path)
	assert.Equal(t, domain.NormalizePath(filepath.Join(project.Root, "src", "util.ts")), files[1].Path)
	assert.NotEmpty(t, files[0].Text)

	// Enumeration hands out the same handles every time.
	again := host.SourceFiles()
	assert.Same(t, files[0], again[0])
}

func TestScriptHost_GetSourceFile(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	appPath := filepath.Join(project.Root, "src", "app.ts")

	first := host.GetSourceFile(appPath, false)
	require.NotNil(t, first)

	// Non-fresh retrieval reuses the host's handle.
	assert.Same(t, first, host.GetSourceFile(appPath, false))

	// Fresh retrieval re-reads and produces a new handle.
	fresh := host.GetSourceFile(appPath, true)
	require.NotNil(t, fresh)
	assert.NotSame(t, first, fresh)
	assert.Equal(t, first.Text, fresh.Text)

	// Unreadable paths are a nil handle, not an error.
	assert.Nil(t, host.GetSourceFile(filepath.Join(project.Root, "src", "missing.ts"), false))
}

func TestScriptHost_LookupModule_Relative(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	containing := filepath.Join(project.Root, "src", "app.ts")
	res := host.LookupModule("./util", containing, nil)
	require.NotNil(t, res)
	assert.Equal(t, domain.NormalizePath(filepath.Join(project.Root, "src", "util.ts")), res.Path)
	assert.False(t, res.External)
}

func TestScriptHost_LookupModule_Bare(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	containing := filepath.Join(project.Root, "src", "app.ts")
	res := host.LookupModule("pkg-a", containing, nil)
	require.NotNil(t, res)
	assert.Equal(t, domain.NormalizePath(filepath.Join(project.Root, "node_modules", "pkg-a", "index.d.ts")), res.Path)
	assert.True(t, res.External)

	assert.Nil(t, host.LookupModule("pkg-missing", containing, nil))
}

func TestScriptHost_LookupModule_CacheToken(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	cache := domain.NewResolutionCache(16)
	containing := filepath.Join(project.Root, "src", "app.ts")

	first := host.LookupModule("pkg-a", containing, cache)
	require.NotNil(t, first)

	// Second lookup of the same (dir, name) is served from the token even if
	// the target vanished from disk in the meantime.
	require.NoError(t, os.RemoveAll(filepath.Join(project.Root, "node_modules", "pkg-a")))
	second := host.LookupModule("pkg-a", containing, cache)
	assert.Same(t, first, second)
}

func TestScriptHost_LookupTypeRef(t *testing.T) {
	project := projectFixture(t)
	host, err := fs.NewScriptHost(project)
	require.NoError(t, err)

	containing := filepath.Join(project.Root, "src", "app.ts")

	ref := host.LookupTypeRef("runner", containing, nil)
	require.NotNil(t, ref)
	assert.Equal(t, domain.NormalizePath(filepath.Join(project.Root, "node_modules", "@types", "runner", "index.d.ts")), ref.Path)

	assert.Nil(t, host.LookupTypeRef("ghost", containing, nil))
}

func TestNewScriptHost_MissingRoot(t *testing.T) {
	_, err := fs.NewScriptHost(&domain.Project{Root: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
