package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch generates once, then regenerates whenever the manifest or its lockfile
// changes. Generation errors are logged and watching continues. Watch returns
// when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts TargetOptions) error {
	if err := a.Generate(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	paths := a.watchPaths(opts)
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching " + strings.Join(paths, ", "))

	for event := range a.watcher.Events() {
		if ctx.Err() != nil {
			break
		}
		a.logger.Info("changed: " + strings.Join(event.Paths, ", "))
		if err := a.Generate(ctx, opts); err != nil {
			a.logger.Error(err)
		}
	}
	return nil
}

// watchPaths collects the files every selected manifest was read from. When the
// manifest cannot be loaded, the manifest path alone is watched so a fix is noticed.
func (a *App) watchPaths(opts TargetOptions) []string {
	manifests, err := a.load(opts)
	if err != nil {
		return []string{manifestPath(opts.Manifest)}
	}

	var paths []string
	for _, m := range manifests {
		for _, src := range m.Sources {
			if !slices.Contains(paths, src) {
				paths = append(paths, src)
			}
		}
	}
	return paths
}

func manifestPath(path string) string {
	if path == "" {
		return domain.ManifestFileName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, domain.ManifestFileName)
	}
	return path
}
