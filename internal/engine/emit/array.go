package emit

import (
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.Emitter = (*ArrayEmitter)(nil)

// ArrayEmitter renders the array form: fixed-size arrays of Dependency records.
type ArrayEmitter struct{}

// NewArrayEmitter creates a new ArrayEmitter.
func NewArrayEmitter() *ArrayEmitter {
	return &ArrayEmitter{}
}

// Form returns domain.FormArray.
func (e *ArrayEmitter) Form() domain.ArtifactForm {
	return domain.FormArray
}

// Emit renders meta as array form Go source.
func (e *ArrayEmitter) Emit(meta *domain.Metadata, out domain.OutputSpec) (domain.Artifact, error) {
	return render(arrayShape{}, meta, out)
}

type arrayShape struct{}

func (arrayShape) form() domain.ArtifactForm { return domain.FormArray }

func (arrayShape) packageDoc(pkg string) string {
	return "// Package " + pkg + " holds the project and dependency versions recorded at build time.\n"
}

func (arrayShape) typeDecl() string {
	return "// Dependency is a dependency pinned at build time.\n" +
		"type Dependency struct {\n" +
		"\tName    string\n" +
		"\tVersion string\n" +
		"}\n\n"
}

func (arrayShape) elementType() string { return "Dependency" }

func (arrayShape) setDoc(set string) string { return setDoc(set) }

func (arrayShape) record(name, version string) string {
	return "{Name: " + name + ", Version: " + version + "}"
}
