package ports

import "go.trai.ch/stamp/internal/core/domain"

// ArtifactPublisher writes generated artifacts to their output locations.
//
//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type ArtifactPublisher interface {
	// Publish writes all artifacts or none of them.
	Publish(artifacts ...domain.Artifact) error
}

// ArtifactReader reads previously published artifacts back.
type ArtifactReader interface {
	// Read loads the artifact at path.
	Read(form domain.ArtifactForm, path string) (domain.Artifact, error)
}
