package analyze

import (
	"go/types"
	"strings"

	"field-inspector/internal/common"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "Child2" for a type
//   - "Child2.StackClass" for a field
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders declared types the way they are spelled in source.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable representation of a TypeInfo as seen
// from the package at fromPkg: types of that package are unqualified, other
// packages are qualified by their package name.
func (s *TypeStringer) TypeString(t *TypeInfo, fromPkg string) string {
	if t == nil {
		return "<nil>"
	}

	if t.GoType != nil {
		return types.TypeString(t.GoType, func(p *types.Package) string {
			if p.Path() == fromPkg {
				return ""
			}
			return p.Name()
		})
	}

	if t.Display != "" {
		return t.Display
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + s.TypeString(t.ElemType, fromPkg)

	case TypeKindSlice:
		return "[]" + s.TypeString(t.ElemType, fromPkg)

	default:
		if !t.IsNamed() {
			return common.UnknownStr
		}
		if t.ID.PkgPath == fromPkg || t.ID.PkgPath == "" {
			return t.ID.Name
		}
		return common.PkgAlias(t.ID.PkgPath) + "." + t.ID.Name
	}
}

// FieldPath returns a path string for a field within a type.
// Example: Child2, StackClass -> "Child2.StackClass"
func (s *TypeStringer) FieldPath(typeName string, fieldNames ...string) string {
	path := NewTypePath(typeName)
	for _, fn := range fieldNames {
		path = path.Field(fn)
	}
	return path.String()
}
