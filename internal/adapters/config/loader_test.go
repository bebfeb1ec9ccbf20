package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/config"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project:
  name: demo
  version: 1.2.3
  description: x
dependencies:
  - name: fmt
    version: 10.1.0
  - name: spdlog
    version: 1.10
targets:
  demo:
    dependencies:
      fmt: 10.1.0
`)

	m, err := config.NewLoader(nil).Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "demo", m.Name)
	assert.Equal(t, "1.2.3", m.Version)
	assert.Equal(t, "x", m.Description)
	assert.Equal(t, "demo", m.Target)
	assert.Equal(t, []domain.Dependency{
		{Name: "fmt", Version: "10.1.0"},
		{Name: "spdlog", Version: "1.10"},
	}, m.ProjectDependencies)
	assert.Equal(t, []domain.Dependency{{Name: "fmt", Version: "10.1.0"}}, m.TargetDependencies)
	assert.Equal(t, []string{path}, m.Sources)

	assert.Equal(t, filepath.Join(dir, "versions", "versions_gen.go"), m.Output.Array.Path)
	assert.Equal(t, "versions", m.Output.Array.Package)
	assert.Equal(t, filepath.Join(dir, "versioninfo", "versioninfo_gen.go"), m.Output.Map.Path)
	assert.Equal(t, "versioninfo", m.Output.Map.Package)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stamp.yaml", "project:\n  name: demo\n  version: \"1\"\n")

	m, err := config.NewLoader(nil).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name)
	assert.Empty(t, m.Target)
	assert.Empty(t, m.TargetDependencies)
}

func TestLoad_MappingPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
dependencies:
  zlib: 1.3.1
  abseil: 20240116.2
  mbedtls:
    version: 3.6.0
  boost: {version: 1.85.0}
`)

	m, err := config.NewLoader(nil).Load(path, "")
	require.NoError(t, err)

	names := make([]string, 0, len(m.ProjectDependencies))
	for _, dep := range m.ProjectDependencies {
		names = append(names, dep.Name)
	}
	assert.Equal(t, []string{"zlib", "abseil", "mbedtls", "boost"}, names)
	assert.Equal(t, "20240116.2", m.ProjectDependencies[1].Version)
	assert.Equal(t, "3.6.0", m.ProjectDependencies[2].Version)
	assert.Equal(t, "1.85.0", m.ProjectDependencies[3].Version)
}

func TestLoad_ShortSequenceEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
dependencies:
  - fmt: 10.1.0
  - name: json
`)

	m, err := config.NewLoader(nil).Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{
		{Name: "fmt", Version: "10.1.0"},
		{Name: "json"},
	}, m.ProjectDependencies)
}

func TestLoad_Lockfile(t *testing.T) {
	dir := t.TempDir()
	lock := writeFile(t, dir, "versions.json", `{
  "meta": {"generated": "today"},
  "versions": {
    "nlohmann/json": {"version": "v3.11.3", "url": "https://example.com"},
    "gabime/spdlog": {"version": "#a1b2c3"},
    "fmtlib/fmt": {"version": "master"}
  }
}`)
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
dependencies:
  - {name: boost, version: 1.85.0}
lockfile: versions.json
`)

	m, err := config.NewLoader(nil).Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{
		{Name: "boost", Version: "1.85.0"},
		{Name: "nlohmann/json", Version: "v3.11.3"},
		{Name: "gabime/spdlog", Version: "#a1b2c3"},
		{Name: "fmtlib/fmt", Version: "master"},
	}, m.ProjectDependencies)
	assert.Equal(t, []string{path, lock}, m.Sources)
}

func TestLoad_MissingLockfile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
lockfile: versions.json
`)

	_, err := config.NewLoader(nil).Load(path, "")
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoad_OutputOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
output:
  array: gen/arrays/versions.go
  mapPackage: info
targets:
  cli:
    output:
      map: internal/meta/meta_gen.go
  server: {}
`)

	loader := config.NewLoader(nil)

	cli, err := loader.Load(path, "cli")
	require.NoError(t, err)
	assert.Equal(t, domain.OutputConfig{
		Array: domain.OutputSpec{Path: filepath.Join(dir, "gen", "arrays", "versions.go"), Package: "arrays"},
		Map:   domain.OutputSpec{Path: filepath.Join(dir, "internal", "meta", "meta_gen.go"), Package: "info"},
	}, cli.Output)

	server, err := loader.Load(path, "server")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "versioninfo", "versioninfo_gen.go"), server.Output.Map.Path)
	assert.Equal(t, "info", server.Output.Map.Package)
}

func TestLoad_TargetSelection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
targets:
  server:
    dependencies: [{name: grpc, version: 1.64.0}]
  cli:
    dependencies: [{name: cobra, version: 1.8.0}]
`)
	loader := config.NewLoader(nil)

	t.Run("explicit", func(t *testing.T) {
		m, err := loader.Load(path, "cli")
		require.NoError(t, err)
		assert.Equal(t, "cli", m.Target)
		assert.Equal(t, []domain.Dependency{{Name: "cobra", Version: "1.8.0"}}, m.TargetDependencies)
	})

	t.Run("required", func(t *testing.T) {
		_, err := loader.Load(path, "")
		require.ErrorIs(t, err, domain.ErrTargetRequired)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := loader.Load(path, "web")
		require.ErrorIs(t, err, domain.ErrTargetNotFound)
	})
}

func TestTargets_DeclarationOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stamp.yaml", `
project: {name: demo, version: "1"}
targets:
  zeta: {}
  alpha: {}
  mid: {}
`)

	names, err := config.NewLoader(nil).Targets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		_, err := config.NewLoader(nil).Load(filepath.Join(t.TempDir(), "stamp.yaml"), "")
		require.ErrorIs(t, err, domain.ErrManifestNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "stamp.yaml", "project: [unclosed\n")
		_, err := config.NewLoader(nil).Load(path, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})

	t.Run("invalid dependencies", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "stamp.yaml", "dependencies: fmt\n")
		_, err := config.NewLoader(nil).Load(path, "")
		require.Error(t, err)
	})
}

func TestLoad_WarnsOnDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("dependency fmt is declared more than once in ProjectDependencies")

	path := writeFile(t, t.TempDir(), "stamp.yaml", `
project: {name: demo, version: "1"}
dependencies:
  - {name: fmt, version: 9.1.0}
  - {name: fmt, version: 10.1.0}
`)

	m, err := config.NewLoader(log).Load(path, "")
	require.NoError(t, err)
	assert.Len(t, m.ProjectDependencies, 2)
}
