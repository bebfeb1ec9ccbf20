// Package domain contains the core domain models for version metadata generation.
package domain

import "slices"

const (
	// ProjectDependenciesName names the project-wide dependency set.
	ProjectDependenciesName = "ProjectDependencies"
	// TargetDependenciesName names the build target's dependency set.
	TargetDependenciesName = "TargetDependencies"
)

// ProjectIdentity describes the project being built.
type ProjectIdentity struct {
	Name        string
	Version     string
	Description string
}

// Dependency is a single dependency pinned to a version.
type Dependency struct {
	Name    string
	Version string
}

// String returns the dependency in name@version form.
func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

// DependencySet is an ordered sequence of dependencies.
// Order is the manifest's declaration order and is never re-sorted.
type DependencySet []Dependency

// Clone returns a copy of the set that does not share memory with s.
func (s DependencySet) Clone() DependencySet {
	if s == nil {
		return DependencySet{}
	}
	return slices.Clone(s)
}

// NamedSet pairs a dependency set with the name it is emitted under.
type NamedSet struct {
	Name         string
	Dependencies DependencySet
}

// Metadata is the fully resolved input of one generation pass.
type Metadata struct {
	Identity            ProjectIdentity
	ProjectDependencies DependencySet
	TargetDependencies  DependencySet

	// Target is the build target the metadata was resolved for. It is not emitted.
	Target string
}

// Sets returns both dependency sets in emission order.
func (m *Metadata) Sets() []NamedSet {
	return []NamedSet{
		{Name: ProjectDependenciesName, Dependencies: m.ProjectDependencies},
		{Name: TargetDependenciesName, Dependencies: m.TargetDependencies},
	}
}
