package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultPackage is used when a schema file names no package.
const DefaultPackage = "schema"

// File represents the root of a YAML schema file.
type File struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`

	// Package is the package path the declared types belong to.
	Package string `yaml:"package,omitempty"`

	// Types lists the declared types in file order.
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one type.
type TypeDef struct {
	// Name of the type, unique within the file.
	Name string `yaml:"name"`

	// Extends lists the names of the direct supertypes.
	Extends []string `yaml:"extends,omitempty"`

	// Fields lists the public fields in declaration order.
	Fields []FieldDef `yaml:"fields,omitempty"`

	// Enum lists the constants of an enumerated type in declaration order.
	// A type with constants has no fields.
	Enum []string `yaml:"enum,omitempty"`
}

// IsEnum returns true if the type declares constants.
func (t *TypeDef) IsEnum() bool {
	return len(t.Enum) > 0
}

// FieldDef declares one field.
type FieldDef struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Editor Editor `yaml:"editor,omitempty"`
}

// Editor is the editable marker of a field.
// YAML formats supported:
//   - absent, null or false: not editable
//   - true: editable, default group
//   - a string: editable, the string is the group label
type Editor struct {
	Editable bool
	Group    string
}

// UnmarshalYAML implements custom YAML unmarshaling for Editor.
func (e *Editor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: editor must be a bool or a group name", node.Line)
	}

	switch node.Tag {
	case "!!null":
		*e = Editor{}
		return nil

	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*e = Editor{Editable: b}
		return nil

	default:
		*e = Editor{Editable: true, Group: node.Value}
		return nil
	}
}

// MarshalYAML implements custom YAML marshaling for Editor.
func (e Editor) MarshalYAML() (any, error) {
	if !e.Editable {
		return nil, nil
	}
	if e.Group == "" {
		return true, nil
	}

	return e.Group, nil
}

// IsZero lets omitempty drop non-editable markers.
func (e Editor) IsZero() bool {
	return !e.Editable
}
