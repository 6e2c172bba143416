package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"field-inspector/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "field-inspector/examples/scene"
	Name    string // e.g., "Child1"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ParseTypeID splits a qualified name "pkg/path.Name" at its last dot.
// A name without a dot yields a TypeID with an empty PkgPath.
func ParseTypeID(qualified string) TypeID {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return TypeID{Name: qualified}
	}

	return TypeID{PkgPath: qualified[:i], Name: qualified[i+1:]}
}

// CompareTypeIDs orders TypeIDs by their qualified name.
func CompareTypeIDs(a, b TypeID) int {
	return strings.Compare(a.String(), b.String())
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown    TypeKind = iota
	TypeKindBasic               // int, string, bool, etc.
	TypeKindStruct              // struct type
	TypeKindPointer             // pointer to another type
	TypeKindSlice               // slice of another type
	TypeKindArray               // array of another type
	TypeKindMap                 // map type
	TypeKindInterface           // interface type
	TypeKindEnum                // named basic type with declared constants
	TypeKindAlias               // named type wrapping another
	TypeKindExternal            // external/opaque type (e.g., time.Time)
	TypeKindUnresolved          // type that could not be resolved
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindEnum:
		return "enum"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindUnresolved:
		return "unresolved"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and arrays, the element type
	Fields     []FieldInfo // For structs, the list of declared fields
	Supertypes []TypeID    // Types this type directly derives from
	Constants  []string    // For enums, constant names in declaration order
	GoType     types.Type  // The original go/types.Type (nil for schema types)
	Display    string      // Declared spelling for types without a GoType
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsPrimitive returns true for unnamed basic types (int, float32, string...).
func (t *TypeInfo) IsPrimitive() bool {
	return t.Kind == TypeKindBasic
}

// IsEnum returns true if the type is an enumerated type.
func (t *TypeInfo) IsEnum() bool {
	return t.Kind == TypeKindEnum
}

// Target returns the type a class-valued field refers to: pointers are
// followed to their element, everything else is returned as is.
func (t *TypeInfo) Target() *TypeInfo {
	cur := t
	for cur != nil && cur.Kind == TypeKindPointer {
		cur = cur.ElemType
	}

	return cur
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasTag returns true if the field has the specified tag key, even with an
// empty value.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from a scan scope.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Resolve looks up a type by qualified name. A bare name is resolved against
// the package listed first in load order.
func (g *TypeGraph) Resolve(name string) TypeID {
	id := ParseTypeID(name)
	if id.PkgPath == "" {
		if first, ok := common.First(g.Order()); ok {
			id.PkgPath = first
		}
	}

	return id
}

// Order returns the package paths in load order.
func (g *TypeGraph) Order() []string {
	infos := make([]*PackageInfo, 0, len(g.Packages))
	for _, p := range g.Packages {
		infos = append(infos, p)
	}

	slices.SortFunc(infos, func(a, b *PackageInfo) int {
		if a.Seq != b.Seq {
			return a.Seq - b.Seq
		}

		return strings.Compare(a.Path, b.Path)
	})

	paths := make([]string, 0, len(infos))
	for _, p := range infos {
		paths = append(paths, p.Path)
	}

	return paths
}

// SortedIDs returns every named type in the graph sorted by qualified name.
func (g *TypeGraph) SortedIDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, CompareTypeIDs)

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Seq   int      // Position in load order
	Types []TypeID // Named types defined in this package
}
