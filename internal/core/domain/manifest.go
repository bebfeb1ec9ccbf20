package domain

// Manifest is the raw, already parsed project description handed to the resolver.
// Nothing in it has been validated yet.
type Manifest struct {
	Name        string
	Version     string
	Description string

	ProjectDependencies []Dependency
	TargetDependencies  []Dependency

	// Target is the selected build target, empty when the manifest declares none.
	Target string

	// Output holds where and under which package names the artifacts are written.
	Output OutputConfig

	// Sources lists the files the manifest was read from, in read order.
	Sources []string
}

// OutputSpec locates one generated artifact.
type OutputSpec struct {
	Path    string
	Package string
}

// OutputConfig locates both generated artifacts of a pass.
type OutputConfig struct {
	Array OutputSpec
	Map   OutputSpec
}

// Paths returns the artifact paths in emission order.
func (c OutputConfig) Paths() []string {
	return []string{c.Array.Path, c.Map.Path}
}

// DefaultOutputConfig returns the output locations used when a manifest sets none.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Array: OutputSpec{Path: DefaultArrayPath, Package: DefaultArrayPackage},
		Map:   OutputSpec{Path: DefaultMapPath, Package: DefaultMapPackage},
	}
}
