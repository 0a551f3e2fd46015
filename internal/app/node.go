package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skein.dev/skein/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/convert"            //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/scan"               //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the import scanner node.
	ScannerNodeID graft.ID = "adapter.scanner"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[ports.ImportScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportScanner, error) {
			return scan.NewScanner(), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ScannerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			watcher.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.ImportScanner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}

	newHost := func(project *domain.Project) (ports.CompilerHost, error) {
		return fs.NewScriptHost(project)
	}
	newProcessor := func(command []string) ports.ModuleProcessor {
		return convert.NewPipeline(command, log)
	}

	return New(loader, scanner, log, tracer, progress, newHost, newProcessor), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Watcher:  watch,
		Progress: progress,
	}, nil
}
