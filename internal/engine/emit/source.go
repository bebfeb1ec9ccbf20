// Package emit renders resolved version metadata as Go source.
//
// Two forms are produced from the same metadata. The array form exposes each
// dependency as a record with Name and Version fields. The map form lives in
// its own package and exposes each dependency as a generic Pair whose First is
// the name and Second the version. Every value is a constant or an array
// literal of constants, so consumers need no package initialization.
package emit

import (
	"bytes"
	"fmt"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/tools/imports"
)

// shape is the part of the generated source that differs between forms.
type shape interface {
	form() domain.ArtifactForm
	packageDoc(pkg string) string
	typeDecl() string
	elementType() string
	setDoc(set string) string
	record(name, version string) string
}

// render writes the Go source of one artifact for meta.
func render(s shape, meta *domain.Metadata, out domain.OutputSpec) (domain.Artifact, error) {
	form := s.form()
	if meta == nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(domain.ErrEmissionFailure, "no metadata to emit"), "form", string(form))
	}
	if err := checkPackage(form, out.Package); err != nil {
		return domain.Artifact{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", domain.GeneratorName)
	buf.WriteString(s.packageDoc(out.Package))
	fmt.Fprintf(&buf, "package %s\n\n", out.Package)
	buf.WriteString(s.typeDecl())

	if err := writeIdentity(&buf, form, meta.Identity); err != nil {
		return domain.Artifact{}, err
	}

	for _, set := range meta.Sets() {
		if err := writeSet(&buf, s, set); err != nil {
			return domain.Artifact{}, err
		}
	}

	src, err := format(out.Path, buf.Bytes())
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, domain.ErrEmissionFailure.Error()), "form", string(form))
	}

	return domain.Artifact{
		Form:    form,
		Path:    out.Path,
		Package: out.Package,
		Source:  src,
	}, nil
}

func writeIdentity(buf *bytes.Buffer, form domain.ArtifactForm, id domain.ProjectIdentity) error {
	fields := []struct {
		ident, field, value string
	}{
		{"ProjectName", "name", id.Name},
		{"ProjectVersion", "version", id.Version},
		{"ProjectDescription", "description", id.Description},
	}

	buf.WriteString("// Project identity.\nconst (\n")
	for _, f := range fields {
		lit, err := literal(form, f.field, f.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "\t%s = %s\n", f.ident, lit)
	}
	buf.WriteString(")\n\n")
	return nil
}

func writeSet(buf *bytes.Buffer, s shape, set domain.NamedSet) error {
	buf.WriteString(s.setDoc(set.Name))
	if len(set.Dependencies) == 0 {
		fmt.Fprintf(buf, "var %s = [...]%s{}\n\n", set.Name, s.elementType())
		return nil
	}

	fmt.Fprintf(buf, "var %s = [...]%s{\n", set.Name, s.elementType())
	for i, dep := range set.Dependencies {
		name, err := literal(s.form(), fmt.Sprintf("%s[%d].name", set.Name, i), dep.Name)
		if err != nil {
			return err
		}
		version, err := literal(s.form(), fmt.Sprintf("%s[%d].version", set.Name, i), dep.Version)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "\t%s,\n", s.record(name, version))
	}
	buf.WriteString("}\n\n")
	return nil
}

// format gofmts the generated source. No imports are resolved.
func format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

func setDoc(set string) string {
	switch set {
	case domain.ProjectDependenciesName:
		return "// ProjectDependencies lists the dependencies declared for the whole project.\n"
	case domain.TargetDependenciesName:
		return "// TargetDependencies lists the dependencies declared for the build target.\n"
	default:
		return ""
	}
}
