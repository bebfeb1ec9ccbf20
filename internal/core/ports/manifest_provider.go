// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stamp/internal/core/domain"

// ManifestProvider supplies already parsed manifest data.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_provider.go -destination=mocks/mock_manifest_provider.go -package=mocks
type ManifestProvider interface {
	// Load reads the manifest at path and selects the given target.
	// An empty target selects the only declared target, or none when the manifest declares no targets.
	Load(path, target string) (*domain.Manifest, error)

	// Targets returns the names of the targets declared in the manifest, in declaration order.
	Targets(path string) ([]string, error)
}
