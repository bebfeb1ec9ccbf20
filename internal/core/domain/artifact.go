package domain

// ArtifactForm identifies one of the two generated representations.
type ArtifactForm string

const (
	// FormArray exposes dependencies as records with named fields.
	FormArray ArtifactForm = "array"
	// FormMap exposes dependencies as generic first/second pairs in their own package.
	FormMap ArtifactForm = "map"
)

// Artifact is one generated Go source file.
type Artifact struct {
	Form    ArtifactForm
	Path    string
	Package string
	Source  []byte
}
