package config

import (
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Stampfile represents the structure of the stamp.yaml manifest.
type Stampfile struct {
	Project      ProjectDTO     `yaml:"project"`
	Dependencies DependencyList `yaml:"dependencies"`
	Lockfile     string         `yaml:"lockfile"`
	Output       OutputDTO      `yaml:"output"`
	Targets      TargetMap      `yaml:"targets"`
}

// ProjectDTO represents the project identity section.
type ProjectDTO struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// TargetDTO represents one build target.
type TargetDTO struct {
	Dependencies DependencyList `yaml:"dependencies"`
	Output       OutputDTO      `yaml:"output"`
}

// OutputDTO overrides where artifacts are written.
type OutputDTO struct {
	Array        string `yaml:"array"`
	Map          string `yaml:"map"`
	ArrayPackage string `yaml:"arrayPackage"`
	MapPackage   string `yaml:"mapPackage"`
}

// DependencyList is an ordered dependency list. It accepts either a sequence of
// {name, version} records or a mapping of name to version; mapping order is kept.
type DependencyList []domain.Dependency

// UnmarshalYAML decodes the list from the raw node so declaration order survives.
func (l *DependencyList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		deps := make(DependencyList, 0, len(value.Content))
		for _, item := range value.Content {
			dep, err := decodeRecord(item)
			if err != nil {
				return err
			}
			deps = append(deps, dep)
		}
		*l = deps
	case yaml.MappingNode:
		deps := make(DependencyList, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			dep, err := decodePair(value.Content[i], value.Content[i+1])
			if err != nil {
				return err
			}
			deps = append(deps, dep)
		}
		*l = deps
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return invalidEntry(value, "dependencies must be a list or a mapping")
		}
		*l = nil
	default:
		return invalidEntry(value, "dependencies must be a list or a mapping")
	}
	return nil
}

// decodeRecord reads `- {name: fmt, version: 10.1.0}` or the short `- fmt: 10.1.0`.
func decodeRecord(item *yaml.Node) (domain.Dependency, error) {
	if item.Kind != yaml.MappingNode {
		return domain.Dependency{}, invalidEntry(item, "dependency must be a mapping")
	}

	var dep domain.Dependency
	var named bool
	for i := 0; i+1 < len(item.Content); i += 2 {
		key, val := item.Content[i], item.Content[i+1]
		switch key.Value {
		case "name":
			dep.Name = scalar(val)
			named = true
		case "version":
			dep.Version = scalar(val)
			named = true
		}
	}
	if named {
		return dep, nil
	}

	if len(item.Content) == 2 {
		return decodePair(item.Content[0], item.Content[1])
	}
	return domain.Dependency{}, invalidEntry(item, "dependency needs name and version")
}

// decodePair reads `fmt: 10.1.0` or `fmt: {version: 10.1.0}`.
func decodePair(key, val *yaml.Node) (domain.Dependency, error) {
	dep := domain.Dependency{Name: key.Value}
	switch val.Kind {
	case yaml.ScalarNode:
		dep.Version = scalar(val)
	case yaml.MappingNode:
		for i := 0; i+1 < len(val.Content); i += 2 {
			if val.Content[i].Value == "version" {
				dep.Version = scalar(val.Content[i+1])
			}
		}
	default:
		return domain.Dependency{}, invalidEntry(val, "dependency version must be a scalar")
	}
	return dep, nil
}

// scalar returns the literal text of a scalar so versions such as 1.10 keep their
// trailing zero. Null scalars are empty.
func scalar(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

func invalidEntry(n *yaml.Node, msg string) error {
	err := zerr.With(zerr.New(msg), "line", n.Line)
	return zerr.With(err, "column", n.Column)
}

// TargetMap holds the declared targets in declaration order.
type TargetMap struct {
	Names  []string
	ByName map[string]TargetDTO
}

// UnmarshalYAML decodes the targets mapping keeping its order.
func (m *TargetMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return invalidEntry(value, "targets must be a mapping")
	}

	m.Names = make([]string, 0, len(value.Content)/2)
	m.ByName = make(map[string]TargetDTO, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		var dto TargetDTO
		if err := value.Content[i+1].Decode(&dto); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid target"), "target", name)
		}
		if _, dup := m.ByName[name]; !dup {
			m.Names = append(m.Names, name)
		}
		m.ByName[name] = dto
	}
	return nil
}
