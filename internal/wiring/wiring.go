// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.skein.dev/skein/internal/adapters/config"
	_ "go.skein.dev/skein/internal/adapters/convert"
	_ "go.skein.dev/skein/internal/adapters/logger"
	_ "go.skein.dev/skein/internal/adapters/telemetry"
	_ "go.skein.dev/skein/internal/adapters/telemetry/progrock"
	_ "go.skein.dev/skein/internal/adapters/watcher"
	// Register app nodes.
	_ "go.skein.dev/skein/internal/app"
)
