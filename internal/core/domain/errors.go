package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRootNotFound is returned when the project root directory does not exist.
	ErrRootNotFound = zerr.New("project root not found")

	// ErrHostLoadFailed is returned when the file-system host cannot enumerate
	// or read the project's source files.
	ErrHostLoadFailed = zerr.New("failed to load project sources")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project")

	// ErrNoProjectDir is returned when no project directory is specified and
	// the working directory cannot be determined.
	ErrNoProjectDir = zerr.New("no project directory")
)
