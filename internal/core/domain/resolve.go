package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Resolve validates a manifest and turns it into the metadata of one generation pass.
// It fails on the first missing field and never returns partial metadata.
func Resolve(m *Manifest) (*Metadata, error) {
	if m == nil {
		return nil, zerr.With(zerr.Wrap(ErrMissingMetadata, "manifest is empty"), "field", "name")
	}

	if isBlank(m.Name) {
		return nil, missingField("name")
	}
	if isBlank(m.Version) {
		return nil, missingField("version")
	}

	if err := checkRecords(ProjectDependenciesName, m.ProjectDependencies); err != nil {
		return nil, err
	}
	if err := checkRecords(TargetDependenciesName, m.TargetDependencies); err != nil {
		return nil, err
	}

	return &Metadata{
		Identity: ProjectIdentity{
			Name:        m.Name,
			Version:     m.Version,
			Description: m.Description,
		},
		ProjectDependencies: DependencySet(m.ProjectDependencies).Clone(),
		TargetDependencies:  DependencySet(m.TargetDependencies).Clone(),
		Target:              m.Target,
	}, nil
}

func checkRecords(set string, deps []Dependency) error {
	for i, dep := range deps {
		if isBlank(dep.Name) {
			return missingField(fmt.Sprintf("%s[%d].name", set, i))
		}
		if isBlank(dep.Version) {
			return zerr.With(missingField(fmt.Sprintf("%s[%d].version", set, i)), "dependency", dep.Name)
		}
	}
	return nil
}

func missingField(field string) error {
	return zerr.With(zerr.Wrap(ErrMissingMetadata, "manifest field is empty"), "field", field)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
