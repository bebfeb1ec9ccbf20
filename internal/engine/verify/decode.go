// Package verify checks that generated representations encode the same metadata.
package verify

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// schema names the record fields of one form.
type schema struct {
	nameKey    string
	versionKey string
}

var schemas = map[domain.ArtifactForm]schema{
	domain.FormArray: {nameKey: "Name", versionKey: "Version"},
	domain.FormMap:   {nameKey: "First", versionKey: "Second"},
}

// Decode parses a generated artifact back into the metadata it encodes.
// Only the logical content is read; comments and layout are ignored.
func Decode(a domain.Artifact) (*domain.Metadata, error) {
	s, ok := schemas[a.Form]
	if !ok {
		return nil, decodeError(a, "unknown artifact form")
	}

	file, err := parser.ParseFile(token.NewFileSet(), a.Path, a.Source, parser.SkipObjectResolution)
	if err != nil {
		return nil, zerr.With(decodeError(a, "artifact is not valid Go source"), "reason", err.Error())
	}

	consts := make(map[string]string)
	sets := make(map[string]domain.DependencySet)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, ident := range vs.Names {
				if i >= len(vs.Values) {
					continue
				}
				switch gen.Tok {
				case token.CONST:
					value, err := stringValue(vs.Values[i])
					if err != nil {
						return nil, zerr.With(decodeError(a, err.Error()), "identifier", ident.Name)
					}
					consts[ident.Name] = value
				case token.VAR:
					set, err := s.decodeSet(vs.Values[i])
					if err != nil {
						return nil, zerr.With(decodeError(a, err.Error()), "identifier", ident.Name)
					}
					sets[ident.Name] = set
				}
			}
		}
	}

	meta := &domain.Metadata{}
	for _, f := range []struct {
		ident string
		dst   *string
	}{
		{"ProjectName", &meta.Identity.Name},
		{"ProjectVersion", &meta.Identity.Version},
		{"ProjectDescription", &meta.Identity.Description},
	} {
		value, ok := consts[f.ident]
		if !ok {
			return nil, zerr.With(decodeError(a, "constant not declared"), "identifier", f.ident)
		}
		*f.dst = value
	}

	for _, f := range []struct {
		ident string
		dst   *domain.DependencySet
	}{
		{domain.ProjectDependenciesName, &meta.ProjectDependencies},
		{domain.TargetDependenciesName, &meta.TargetDependencies},
	} {
		set, ok := sets[f.ident]
		if !ok {
			return nil, zerr.With(decodeError(a, "variable not declared"), "identifier", f.ident)
		}
		*f.dst = set
	}

	return meta, nil
}

func (s schema) decodeSet(expr ast.Expr) (domain.DependencySet, error) {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil, zerr.New("dependency set is not a composite literal")
	}
	if _, ok := lit.Type.(*ast.ArrayType); !ok {
		return nil, zerr.New("dependency set is not an array")
	}

	set := make(domain.DependencySet, 0, len(lit.Elts))
	for i, elt := range lit.Elts {
		dep, err := s.decodeRecord(elt)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		set = append(set, dep)
	}
	return set, nil
}

func (s schema) decodeRecord(expr ast.Expr) (domain.Dependency, error) {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok || len(lit.Elts) != 2 {
		return domain.Dependency{}, zerr.New("record is not a two-field composite literal")
	}

	var dep domain.Dependency
	for i, elt := range lit.Elts {
		key := []string{s.nameKey, s.versionKey}[i]
		value := elt
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			ident, ok := kv.Key.(*ast.Ident)
			if !ok {
				return domain.Dependency{}, zerr.New("record key is not an identifier")
			}
			key = ident.Name
			value = kv.Value
		}

		str, err := stringValue(value)
		if err != nil {
			return domain.Dependency{}, err
		}

		switch key {
		case s.nameKey:
			dep.Name = str
		case s.versionKey:
			dep.Version = str
		default:
			return domain.Dependency{}, zerr.With(zerr.New("unexpected record field"), "field", key)
		}
	}
	return dep, nil
}

func stringValue(expr ast.Expr) (string, error) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", zerr.New("value is not a string literal")
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", zerr.Wrap(err, "value is not a valid string literal")
	}
	return value, nil
}

func decodeError(a domain.Artifact, reason string) error {
	err := zerr.Wrap(domain.ErrRepresentationMismatch, "cannot decode artifact: "+reason)
	err = zerr.With(err, "location", "decode")
	err = zerr.With(err, "form", string(a.Form))
	return zerr.With(err, "path", a.Path)
}
