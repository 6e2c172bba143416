package analyze

import (
	"cmp"
	"context"
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	enums     map[*types.TypeName][]*types.Const
	named     map[TypeID]*types.TypeName
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		enums:     make(map[*types.TypeName][]*types.Const),
		named:     make(map[TypeID]*types.TypeName),
	}
}

// Load is a shorthand for NewAnalyzer().LoadPackages.
func Load(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	return NewAnalyzer().LoadPackages(ctx, patterns...)
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/scene",
// "field-inspector/examples/shapes").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every package first so cross-package references are not
	// mistaken for external types.
	for i, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Seq:  i,
		}
		a.collectEnumConstants(pkg.Types)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	a.linkSupertypes()

	return a.graph, nil
}

// collectEnumConstants records the exported typed constants of every named
// basic type declared in pkg, in source order.
func (a *Analyzer) collectEnumConstants(pkg *types.Package) {
	if pkg == nil {
		return
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}

		a.enums[named.Obj()] = append(a.enums[named.Obj()], c)
	}

	for tn, consts := range a.enums {
		if tn.Pkg() != pkg {
			continue
		}

		slices.SortFunc(consts, func(x, y *types.Const) int {
			return cmp.Compare(x.Pos(), y.Pos())
		})
	}
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information")
	}

	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		a.named[typeID] = typeName
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		if tt.Kind() == types.Invalid {
			info.Kind = TypeKindUnresolved
		} else {
			info.Kind = TypeKindBasic
		}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Channels, funcs and type parameters carry no inspectable shape
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Predeclared named types such as error
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindExternal
		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	// External/opaque type (e.g., time.Time); not walked
	if a.isExternalPackage(obj.Pkg().Path()) {
		info.Kind = TypeKindExternal
		return
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Basic:
		info.Underlying = a.analyzeType(ut)

		consts := a.enums[obj]
		if len(consts) == 0 {
			// Named basic type without constants (e.g., type Meters float64)
			info.Kind = TypeKindAlias
			return
		}

		info.Kind = TypeKindEnum
		for _, c := range consts {
			info.Constants = append(info.Constants, c.Name())
		}

	default:
		// Named type wrapping something else in our packages
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Only exported fields are part of the public surface
		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// linkSupertypes records, for every named type in the graph, the types it
// directly derives from: embedded types for structs, embedded interfaces for
// interfaces, and implemented interfaces for everything else.
func (a *Analyzer) linkSupertypes() {
	var ifaces []TypeID
	for _, id := range a.graph.SortedIDs() {
		if a.graph.Types[id].Kind == TypeKindInterface {
			ifaces = append(ifaces, id)
		}
	}

	for _, id := range a.graph.SortedIDs() {
		info := a.graph.Types[id]
		tn := a.named[id]
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		var supers []TypeID
		switch ut := named.Underlying().(type) {
		case *types.Struct:
			for i := 0; i < ut.NumFields(); i++ {
				if f := ut.Field(i); f.Embedded() {
					supers = appendNamed(supers, f.Type())
				}
			}

		case *types.Interface:
			for i := 0; i < ut.NumEmbeddeds(); i++ {
				supers = appendNamed(supers, ut.EmbeddedType(i))
			}
		}

		if info.Kind != TypeKindInterface {
			for _, ifaceID := range ifaces {
				iface, ok := a.named[ifaceID].Type().Underlying().(*types.Interface)
				if !ok || iface.Empty() || !iface.IsMethodSet() {
					continue
				}

				if types.Implements(named, iface) || types.Implements(types.NewPointer(named), iface) {
					supers = append(supers, ifaceID)
				}
			}
		}

		slices.SortFunc(supers, CompareTypeIDs)
		info.Supertypes = slices.Compact(supers)
	}
}

// appendNamed appends the TypeID of t (following one pointer) when t is a
// named type from a package.
func appendNamed(ids []TypeID, t types.Type) []TypeID {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return ids
	}

	return append(ids, TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()})
}
