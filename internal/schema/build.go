package schema

import (
	"fmt"
	"reflect"
	"strings"

	"field-inspector/internal/analyze"
	"field-inspector/internal/common"
)

// basicTypes are the scalar type names a schema field may use.
var basicTypes = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float": true, "float32": true, "float64": true, "double": true,
	"char": true, "short": true, "long": true,
}

// Build converts a schema file into a type graph. Editor markers become
// struct tags under tagKey so the graph reads exactly like one loaded from
// Go packages.
func Build(f *File, tagKey string) *analyze.TypeGraph {
	graph := analyze.NewTypeGraph()

	pkgInfo := &analyze.PackageInfo{
		Path: f.Package,
		Name: common.PkgAlias(f.Package),
	}
	graph.Packages[f.Package] = pkgInfo

	b := &builder{graph: graph, pkg: f.Package}

	for _, t := range f.Types {
		id := analyze.TypeID{PkgPath: f.Package, Name: t.Name}
		info := &analyze.TypeInfo{ID: id, Kind: analyze.TypeKindStruct}

		if t.IsEnum() {
			info.Kind = analyze.TypeKindEnum
			info.Underlying = &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Display: "int"}
			info.Constants = append([]string(nil), t.Enum...)
		}

		for _, super := range t.Extends {
			info.Supertypes = append(info.Supertypes, analyze.TypeID{PkgPath: f.Package, Name: super})
		}

		graph.Types[id] = info
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	for _, t := range f.Types {
		info := graph.Types[analyze.TypeID{PkgPath: f.Package, Name: t.Name}]

		for i, fd := range t.Fields {
			info.Fields = append(info.Fields, analyze.FieldInfo{
				Name:     fd.Name,
				Exported: true,
				Type:     b.resolve(fd.Type),
				Tag:      editorTag(tagKey, fd.Editor),
				Index:    i,
			})
		}
	}

	return graph
}

type builder struct {
	graph *analyze.TypeGraph
	pkg   string
}

// resolve maps a schema type spelling to a TypeInfo. Unknown names resolve
// to an unresolved TypeInfo rather than an error.
func (b *builder) resolve(name string) *analyze.TypeInfo {
	name = strings.TrimSpace(name)

	switch {
	case strings.HasPrefix(name, "*"):
		return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: b.resolve(name[1:])}

	case strings.HasPrefix(name, "[]"):
		return &analyze.TypeInfo{Kind: analyze.TypeKindSlice, ElemType: b.resolve(name[2:])}

	case basicTypes[name]:
		return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Display: name}
	}

	id := analyze.TypeID{PkgPath: b.pkg, Name: name}
	if qualified := analyze.ParseTypeID(name); qualified.PkgPath == b.pkg {
		id = qualified
	}

	if info := b.graph.GetType(id); info != nil {
		return info
	}

	return &analyze.TypeInfo{Kind: analyze.TypeKindUnresolved, Display: name}
}

// editorTag renders an editor marker as a struct tag.
func editorTag(key string, e Editor) reflect.StructTag {
	if !e.Editable {
		return ""
	}

	return reflect.StructTag(fmt.Sprintf("%s:%q", key, e.Group))
}
