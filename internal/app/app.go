// Package app implements the application layer for stamp.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/stamp/internal/build"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/generator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestProvider
	generator *generator.Generator
	verifier  ports.ConsistencyVerifier
	reader    ports.ArtifactReader
	hasher    ports.Hasher
	store     ports.BuildInfoStore
	watcher   ports.Watcher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	manifests ports.ManifestProvider,
	gen *generator.Generator,
	verifier ports.ConsistencyVerifier,
	reader ports.ArtifactReader,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	watcher ports.Watcher,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		manifests: manifests,
		generator: gen,
		verifier:  verifier,
		reader:    reader,
		hasher:    hasher,
		store:     store,
		watcher:   watcher,
		logger:    log,
		telemetry: telemetry,
	}
}

// TargetOptions selects the manifest and the targets a command works on.
type TargetOptions struct {
	Manifest string
	Target   string
	All      bool
	Force    bool
}

// Generate runs one pass per selected target and publishes the results.
// Passes whose inputs and outputs are unchanged since the last run are skipped
// unless Force is set. Passes run in parallel and fail independently.
func (a *App) Generate(ctx context.Context, opts TargetOptions) error {
	manifests, err := a.load(opts)
	if err != nil {
		return err
	}
	if err := checkConflicts(manifests); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	errs := make([]error, len(manifests))
	for i, m := range manifests {
		g.Go(func() error {
			errs[i] = a.generateOne(ctx, m, opts.Force)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (a *App) generateOne(ctx context.Context, m *domain.Manifest, force bool) error {
	label := targetLabel(m)
	key := cacheKey(m)

	inputHash, err := a.hasher.ComputeInputHash(m.Sources, cacheSalt(m))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInputHashComputationFailed.Error()), "target", label)
	}

	if !force && a.upToDate(key, inputHash, m.Output.Paths()) {
		_, vertex := a.telemetry.Record(ctx, "generate "+label)
		vertex.Cached()
		vertex.Complete(nil)
		a.logger.Info(label + " is up to date")
		return nil
	}

	result, err := a.generator.Run(ctx, m)
	if err != nil {
		return err
	}

	outputs := m.Output.Paths()
	outputHash, err := a.hasher.ComputeOutputHash(outputs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputHashComputationFailed.Error()), "target", label)
	}

	err = a.store.Put(domain.BuildInfo{
		Key:        key,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Outputs:    outputs,
		Timestamp:  time.Now(),
	})
	if err != nil {
		return zerr.With(err, "target", label)
	}

	a.logger.Info(fmt.Sprintf("generated %s: %d dependencies, %s",
		label, countDependencies(result.Metadata), strings.Join(outputs, ", ")))
	return nil
}

// upToDate reports whether the stored build info still describes the inputs and
// the files on disk. Store and hash failures count as a miss.
func (a *App) upToDate(key, inputHash string, outputs []string) bool {
	info, err := a.store.Get(key)
	if err != nil {
		a.logger.Warn("ignoring unreadable build info for " + key)
		return false
	}
	if info == nil || info.InputHash != inputHash {
		return false
	}

	outputHash, err := a.hasher.ComputeOutputHash(outputs)
	if err != nil {
		return false
	}
	return outputHash == info.OutputHash
}

// Verify checks the published artifacts of every selected target against each
// other and against the current manifest. Nothing is written.
func (a *App) Verify(ctx context.Context, opts TargetOptions) error {
	manifests, err := a.load(opts)
	if err != nil {
		return err
	}

	var errs []error
	for _, m := range manifests {
		errs = append(errs, a.verifyOne(ctx, m))
	}
	return errors.Join(errs...)
}

func (a *App) verifyOne(ctx context.Context, m *domain.Manifest) error {
	label := targetLabel(m)
	_, vertex := a.telemetry.Record(ctx, "verify published "+label)

	err := a.checkPublished(m)
	vertex.Complete(err)
	if err != nil {
		return zerr.With(err, "target", label)
	}

	a.logger.Info(label + " is up to date")
	return nil
}

func (a *App) checkPublished(m *domain.Manifest) error {
	meta, err := domain.Resolve(m)
	if err != nil {
		return err
	}

	array, err := a.reader.Read(domain.FormArray, m.Output.Array.Path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactStale.Error())
	}
	mapped, err := a.reader.Read(domain.FormMap, m.Output.Map.Path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactStale.Error())
	}

	if err := a.verifier.Verify(array, mapped); err != nil {
		return err
	}
	if err := a.verifier.VerifyAgainst(meta, array); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactStale.Error())
	}
	return nil
}

// load returns the manifests for the selected targets in declaration order.
func (a *App) load(opts TargetOptions) ([]*domain.Manifest, error) {
	if !opts.All {
		m, err := a.manifests.Load(opts.Manifest, opts.Target)
		if err != nil {
			return nil, err
		}
		return []*domain.Manifest{m}, nil
	}

	targets, err := a.manifests.Targets(opts.Manifest)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		targets = []string{""}
	}

	manifests := make([]*domain.Manifest, 0, len(targets))
	for _, target := range targets {
		m, err := a.manifests.Load(opts.Manifest, target)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// checkConflicts rejects runs where two artifacts would land in the same
// directory. Both forms declare the same identifiers, so they cannot share a
// package, and two passes cannot share an output.
func checkConflicts(manifests []*domain.Manifest) error {
	owners := make(map[string]string)
	for _, m := range manifests {
		for _, path := range m.Output.Paths() {
			dir := filepath.Dir(path)
			owner := targetLabel(m) + ":" + path
			if prev, taken := owners[dir]; taken {
				err := zerr.With(zerr.Wrap(domain.ErrOutputConflict, "two artifacts share an output directory"), "dir", dir)
				return zerr.With(zerr.With(err, "first", prev), "second", owner)
			}
			owners[dir] = owner
		}
	}
	return nil
}

func cacheKey(m *domain.Manifest) string {
	source := ""
	if len(m.Sources) > 0 {
		source = m.Sources[0]
	}
	return m.Target + "@" + source
}

// cacheSalt covers everything besides file contents that changes the output.
func cacheSalt(m *domain.Manifest) string {
	return strings.Join([]string{
		m.Target,
		m.Output.Array.Path, m.Output.Array.Package,
		m.Output.Map.Path, m.Output.Map.Package,
		build.Version,
	}, "\x00")
}

func countDependencies(meta *domain.Metadata) int {
	if meta == nil {
		return 0
	}
	return len(meta.ProjectDependencies) + len(meta.TargetDependencies)
}

func targetLabel(m *domain.Manifest) string {
	switch {
	case m.Target != "":
		return m.Target
	case m.Name != "":
		return m.Name
	default:
		return "<unnamed>"
	}
}
