package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skein.yaml"), []byte("version: \"1\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app.ts"), []byte(`import "./util";`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "util.ts"), []byte("export {}"), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "scan succeeds on a valid project",
			args:         []string{"skein", "scan", "--quiet", root},
			expectedExit: 0,
		},
		{
			name:         "scan fails on a missing directory",
			args:         []string{"skein", "scan", filepath.Join(t.TempDir(), "missing")},
			expectedExit: 1,
		},
		{
			name:         "version",
			args:         []string{"skein", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
