package config

import (
	"errors"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestProvider.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new manifest loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the manifest at path and returns it resolved for target.
// Path may be the manifest file or the directory holding stamp.yaml.
func (l *Loader) Load(path, target string) (*domain.Manifest, error) {
	path = manifestPath(path)
	file, err := readStampfile(path)
	if err != nil {
		return nil, err
	}

	name, dto, err := selectTarget(file, target)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	dir := filepath.Dir(path)
	sources := []string{path}
	project := []domain.Dependency(file.Dependencies)
	if file.Lockfile != "" {
		lockPath := resolvePath(dir, file.Lockfile)
		locked, err := readLockfile(lockPath)
		if err != nil {
			return nil, err
		}
		project = append(project, locked...)
		sources = append(sources, lockPath)
	}
	l.warnDuplicates(domain.ProjectDependenciesName, project)
	l.warnDuplicates(domain.TargetDependenciesName, dto.Dependencies)

	return &domain.Manifest{
		Name:                file.Project.Name,
		Version:             file.Project.Version,
		Description:         file.Project.Description,
		ProjectDependencies: project,
		TargetDependencies:  dto.Dependencies,
		Target:              name,
		Output:              outputConfig(dir, file.Output, dto.Output),
		Sources:             sources,
	}, nil
}

// Targets returns the target names declared in the manifest, in declaration order.
func (l *Loader) Targets(path string) ([]string, error) {
	file, err := readStampfile(manifestPath(path))
	if err != nil {
		return nil, err
	}
	return file.Targets.Names, nil
}

func (l *Loader) warnDuplicates(set string, deps []domain.Dependency) {
	if l.Logger == nil {
		return
	}
	seen := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		if _, ok := seen[dep.Name]; ok {
			l.Logger.Warn("dependency " + dep.Name + " is declared more than once in " + set)
			continue
		}
		seen[dep.Name] = struct{}{}
	}
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

func readStampfile(path string) (*Stampfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no stamp.yaml found"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var file Stampfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	return &file, nil
}

// selectTarget picks the target to generate for. An empty name is accepted when
// the manifest declares at most one target.
func selectTarget(file *Stampfile, name string) (string, TargetDTO, error) {
	if name == "" {
		switch len(file.Targets.Names) {
		case 0:
			return "", TargetDTO{}, nil
		case 1:
			name = file.Targets.Names[0]
			return name, file.Targets.ByName[name], nil
		default:
			return "", TargetDTO{}, zerr.With(
				zerr.Wrap(domain.ErrTargetRequired, "manifest declares several targets"),
				"targets", file.Targets.Names,
			)
		}
	}

	dto, ok := file.Targets.ByName[name]
	if !ok {
		return "", TargetDTO{}, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "unknown target"), "target", name)
	}
	return name, dto, nil
}

// outputConfig layers the target override over the file defaults over the
// built-in defaults. Relative paths are anchored at the manifest directory.
func outputConfig(dir string, defaults, override OutputDTO) domain.OutputConfig {
	out := domain.DefaultOutputConfig()

	arrayPath := pick(override.Array, defaults.Array, out.Array.Path)
	mapPath := pick(override.Map, defaults.Map, out.Map.Path)
	arrayPkg := pick(override.ArrayPackage, defaults.ArrayPackage, "")
	mapPkg := pick(override.MapPackage, defaults.MapPackage, "")

	out.Array = domain.OutputSpec{
		Path:    resolvePath(dir, arrayPath),
		Package: packageFor(arrayPath, arrayPkg, domain.DefaultArrayPackage),
	}
	out.Map = domain.OutputSpec{
		Path:    resolvePath(dir, mapPath),
		Package: packageFor(mapPath, mapPkg, domain.DefaultMapPackage),
	}
	return out
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// packageFor names the package after the output directory unless one is given.
func packageFor(path, explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	base := filepath.Base(filepath.Dir(path))
	if token.IsIdentifier(base) && base != "_" {
		return base
	}
	return fallback
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
