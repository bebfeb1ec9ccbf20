package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// readLockfile reads a versions.json lockfile of the form
//
//	{"meta": {...}, "versions": {"fmtlib/fmt": {"version": "10.1.0", ...}}}
//
// and returns its entries in file order. Fields other than version are ignored.
func readLockfile(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the manifest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "lockfile does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	// JSON is a subset of YAML, and the node API keeps key order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(invalidEntry(root, "lockfile must be an object"), domain.ErrManifestParseFailed.Error()), "path", path)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "versions" {
			continue
		}
		var deps DependencyList
		if err := deps.UnmarshalYAML(root.Content[i+1]); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
		}
		return deps, nil
	}
	return nil, nil
}
