package app

import (
	"go.skein.dev/skein/internal/core/ports"
)

// Components contains all the initialized application components. This
// struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Watcher  ports.Watcher
	Progress ports.Progress
}
