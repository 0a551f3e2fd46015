// Package app implements the application layer for skein.
package app

import (
	"context"
	"fmt"
	"io"

	"go.skein.dev/skein/internal/core/domain"
	"go.skein.dev/skein/internal/core/ports"
	"go.skein.dev/skein/internal/engine/augment"
	"go.trai.ch/zerr"
)

// HostFactory builds the compilation host for a project. Injected so the
// scan pipeline can be exercised without touching the file system.
type HostFactory func(project *domain.Project) (ports.CompilerHost, error)

// ProcessorFactory builds the module post-processor for a configured
// command.
type ProcessorFactory func(command []string) ports.ModuleProcessor

// App represents the main application logic: load a project, build its
// augmented compilation host, and drive a scan over it.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.ImportScanner
	logger       ports.Logger
	tracer       ports.Tracer
	progress     ports.Progress
	newHost      HostFactory
	newProcessor ProcessorFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.ImportScanner,
	logger ports.Logger,
	tracer ports.Tracer,
	progress ports.Progress,
	newHost HostFactory,
	newProcessor ProcessorFactory,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		logger:       logger,
		tracer:       tracer,
		progress:     progress,
		newHost:      newHost,
		newProcessor: newProcessor,
	}
}

// ScanResult carries the outcome of one project scan.
type ScanResult struct {
	Project *domain.Project
	Files   []*domain.SourceFile
	Graph   *domain.DependencyGraph
	Cache   *domain.SourceCacheTable
}

// Scan loads the project at dir, assembles the augmented host per its
// configuration and resolves every import and type reference of every
// source file.
func (a *App) Scan(ctx context.Context, dir string) (*ScanResult, error) {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	result := newScanResult(project)
	if err := a.scanProject(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func newScanResult(project *domain.Project) *ScanResult {
	return &ScanResult{
		Project: project,
		Graph:   domain.NewDependencyGraph(),
		Cache:   domain.NewSourceCacheTable(),
	}
}

// scanProject runs one scan pass into result. The graph and cache table are
// result's and survive across passes, so a watch loop accumulates edges and
// keeps cached source handles warm between rescans.
func (a *App) scanProject(ctx context.Context, result *ScanResult) error {
	project := result.Project

	ctx, span := a.tracer.Start(ctx, "scan")
	defer span.End()
	span.SetAttribute("root", project.Root)

	base, err := a.newHost(project)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to build compilation host")
	}

	size := project.ResolutionCacheSize
	if size <= 0 {
		size = domain.DefaultResolutionCacheSize
	}

	host := augment.Normalize(base, domain.NewResolutionCache(size))
	if project.Augment.Versions {
		host = augment.WithFileVersions(host)
	}
	if project.Augment.SourceCache {
		host = augment.WithSourceCache(host, result.Cache)
	}
	if len(project.ProcessorCommand) > 0 {
		host = augment.WithModuleProcessing(host, a.newProcessor(project.ProcessorCommand))
	}
	if project.Augment.Graph {
		host = augment.WithDependencyRecording(host, result.Graph)
	}

	result.Files = host.SourceFiles()
	span.SetAttribute("files", len(result.Files))

	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}
		a.scanFile(host, file)
	}

	span.SetAttribute("edges", result.Graph.EdgeCount())
	a.logger.Info(fmt.Sprintf("scanned %d files, %d dependency edges", len(result.Files), result.Graph.EdgeCount()))
	return nil
}

func (a *App) scanFile(host ports.ResolvingHost, file *domain.SourceFile) {
	vertex := a.progress.Record(file.Path)

	if names := a.scanner.ScanImports(file.Text); len(names) > 0 {
		host.ResolveModuleNames(names, file.Path)
	}
	if refs := a.scanner.ScanTypeRefs(file.Text); len(refs) > 0 {
		host.ResolveTypeReferenceDirectives(refs, file.Path)
	}

	vertex.Complete(nil)
}

// Watch runs an initial scan of dir and rescans whenever the watcher
// reports a content change. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, dir string, watcher ports.Watcher) error {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	result := newScanResult(project)
	if err := a.scanProject(ctx, result); err != nil {
		return err
	}

	if err := watcher.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
	}()

	for event := range watcher.Events() {
		a.logger.Info("change detected: " + event.Path)

		// The stale handle must not survive into the next scan; the rest
		// of the table stays warm.
		result.Cache.Evict(event.Path)

		if err := a.scanProject(ctx, result); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Error(err)
		}
	}
	return ctx.Err()
}

// Report writes a human-readable summary of a scan: every file with its
// content version, then the recorded dependency edges.
func (a *App) Report(w io.Writer, result *ScanResult) error {
	if _, err := fmt.Fprintf(w, "files (%d):\n", len(result.Files)); err != nil {
		return err
	}
	for _, f := range result.Files {
		version := f.Version
		if version == "" {
			version = "-"
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", f.Path, version); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "edges (%d):\n", result.Graph.EdgeCount()); err != nil {
		return err
	}
	return result.Graph.Render(w)
}
