// Package config provides the configuration loader for skein.
package config

import (
	"os"
	"path/filepath"

	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked for in the project directory.
const Filename = "skein.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader over a YAML file. When the
// directory itself has no skein.yaml, the loader walks up the parents and
// uses the nearest one; a project with no file at all gets pure defaults with
// the requested directory as root.
type FileConfigLoader struct {
	log ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{log: log}
}

// Load reads the project configuration for the given directory.
func (l *FileConfigLoader) Load(dir string) (*domain.Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNoProjectDir.Error())
	}

	path, found := discover(abs)
	if !found {
		l.log.Warn("no " + Filename + " found, using defaults")
		return &domain.Project{Root: abs}, nil
	}
	return Load(path)
}

// Load reads a configuration file from the given path and returns the
// project it describes. Relative roots are anchored at the file's directory.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Skeinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	root := file.Project.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}

	project := &domain.Project{
		Root:                root,
		Ignore:              file.Project.Ignore,
		Extensions:          file.Project.Extensions,
		ModuleDirs:          file.Project.ModuleDirs,
		TypeRoots:           file.Project.TypeRoots,
		ResolutionCacheSize: file.ResolutionCacheSize,
		Augment: domain.AugmentConfig{
			Versions:    enabled(file.Augment.Versions),
			SourceCache: enabled(file.Augment.Cache),
			Graph:       enabled(file.Augment.Graph),
		},
	}
	if file.Processor != nil {
		project.ProcessorCommand = file.Processor.Command
	}
	return project, nil
}

// discover returns the nearest skein.yaml at or above dir.
func discover(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, Filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}
