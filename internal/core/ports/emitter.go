package ports

import "go.trai.ch/stamp/internal/core/domain"

// Emitter renders resolved metadata as one generated representation.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Form reports which representation the emitter produces.
	Form() domain.ArtifactForm

	// Emit renders the metadata into Go source for the given output.
	// The result is byte-identical for identical input.
	Emit(meta *domain.Metadata, out domain.OutputSpec) (domain.Artifact, error)
}

// ConsistencyVerifier checks that generated representations agree.
type ConsistencyVerifier interface {
	// Verify decodes both artifacts and compares their logical content.
	Verify(array, mapped domain.Artifact) error

	// VerifyAgainst decodes one artifact and compares it with the resolved metadata.
	VerifyAgainst(meta *domain.Metadata, artifact domain.Artifact) error
}
