package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, ".stamp", domain.DefaultStampPath())
	assert.Equal(t, filepath.Join(".stamp", "store"), domain.DefaultStorePath())
}

func TestDefaultOutputConfig(t *testing.T) {
	cfg := domain.DefaultOutputConfig()

	assert.Equal(t, filepath.Join("versions", "versions_gen.go"), cfg.Array.Path)
	assert.Equal(t, "versions", cfg.Array.Package)
	assert.Equal(t, filepath.Join("versioninfo", "versioninfo_gen.go"), cfg.Map.Path)
	assert.Equal(t, "versioninfo", cfg.Map.Package)
	assert.Equal(t, []string{cfg.Array.Path, cfg.Map.Path}, cfg.Paths())
}
