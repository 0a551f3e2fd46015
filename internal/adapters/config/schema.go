package config

// Skeinfile represents the structure of the skein.yaml configuration file.
type Skeinfile struct {
	Version             string        `yaml:"version"`
	Project             ProjectDTO    `yaml:"project"`
	Augment             AugmentDTO    `yaml:"augment"`
	ResolutionCacheSize int           `yaml:"resolutionCacheSize"`
	Processor           *ProcessorDTO `yaml:"processor"`
}

// ProjectDTO describes the project tree the host is built over.
type ProjectDTO struct {
	Root       string   `yaml:"root"`
	Ignore     []string `yaml:"ignore"`
	Extensions []string `yaml:"extensions"`
	ModuleDirs []string `yaml:"moduleDirs"`
	TypeRoots  []string `yaml:"typeRoots"`
}

// AugmentDTO toggles the individual host augmentations. Absent keys mean
// enabled.
type AugmentDTO struct {
	Versions *bool `yaml:"versions"`
	Cache    *bool `yaml:"cache"`
	Graph    *bool `yaml:"graph"`
}

// ProcessorDTO configures the external module post-processor.
type ProcessorDTO struct {
	Command []string `yaml:"command"`
}
