package emit

import (
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.Emitter = (*MapEmitter)(nil)

// MapEmitter renders the map form: the same data grouped in its own package
// as generic name/version pairs.
type MapEmitter struct{}

// NewMapEmitter creates a new MapEmitter.
func NewMapEmitter() *MapEmitter {
	return &MapEmitter{}
}

// Form returns domain.FormMap.
func (e *MapEmitter) Form() domain.ArtifactForm {
	return domain.FormMap
}

// Emit renders meta as map form Go source.
func (e *MapEmitter) Emit(meta *domain.Metadata, out domain.OutputSpec) (domain.Artifact, error) {
	return render(mapShape{}, meta, out)
}

type mapShape struct{}

func (mapShape) form() domain.ArtifactForm { return domain.FormMap }

func (mapShape) packageDoc(pkg string) string {
	return "// Package " + pkg + " holds the project and dependency versions recorded at build time\n" +
		"// as name/version pairs.\n"
}

func (mapShape) typeDecl() string {
	return "// Pair is a generic two-element pair.\n" +
		"type Pair[K, V any] struct {\n" +
		"\tFirst  K\n" +
		"\tSecond V\n" +
		"}\n\n"
}

func (mapShape) elementType() string { return "Pair[string, string]" }

func (mapShape) setDoc(set string) string {
	doc := setDoc(set)
	if doc == "" {
		return ""
	}
	return doc + "// First is the dependency name and Second its version.\n"
}

func (mapShape) record(name, version string) string {
	return "{First: " + name + ", Second: " + version + "}"
}
