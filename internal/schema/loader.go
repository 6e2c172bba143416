package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Package == "" {
		f.Package = DefaultPackage
	}
}

// Validate checks the structure of a schema file: names are present and
// unique, and every supertype is declared. Unknown field types are not
// checked here; they fault the owning type at inspection time.
func Validate(f *File) error {
	var errs []error

	if f.Version != "1" {
		errs = append(errs, fmt.Errorf("unsupported schema version %q", f.Version))
	}

	declared := make(map[string]bool, len(f.Types))
	for i, t := range f.Types {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("types[%d]: missing name", i))
			continue
		}
		if declared[t.Name] {
			errs = append(errs, fmt.Errorf("type %s: declared twice", t.Name))
		}
		declared[t.Name] = true
	}

	for _, t := range f.Types {
		for _, super := range t.Extends {
			if !declared[super] {
				errs = append(errs, fmt.Errorf("type %s: extends undeclared type %s", t.Name, super))
			}
		}

		if t.IsEnum() && len(t.Fields) > 0 {
			errs = append(errs, fmt.Errorf("type %s: enum types cannot declare fields", t.Name))
		}

		seen := make(map[string]bool, len(t.Fields))
		for i, fd := range t.Fields {
			switch {
			case fd.Name == "":
				errs = append(errs, fmt.Errorf("type %s: fields[%d]: missing name", t.Name, i))
			case seen[fd.Name]:
				errs = append(errs, fmt.Errorf("type %s: field %s declared twice", t.Name, fd.Name))
			}
			seen[fd.Name] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid schema: %w", errors.Join(errs...))
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
