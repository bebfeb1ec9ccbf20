package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	TargetOptions

	// Outputs also removes the generated artifacts of the selected targets.
	Outputs bool
}

// Clean removes the build info store and, when asked, the generated artifacts.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	var errs error

	remove := func(path, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", path))
			return
		}
		a.logger.Info("removed " + name)
	}

	remove(domain.DefaultStorePath(), "build info store")

	if opts.Outputs {
		manifests, err := a.load(opts.TargetOptions)
		if err != nil {
			return errors.Join(errs, err)
		}
		for _, m := range manifests {
			for _, path := range m.Output.Paths() {
				remove(path, path)
			}
		}
	}

	return errs
}
