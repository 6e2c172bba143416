package inspect

import (
	"reflect"

	"field-inspector/internal/analyze"
)

const testPkg = "example.com/scene"

func id(name string) analyze.TypeID { return analyze.TypeID{PkgPath: testPkg, Name: name} }

var (
	intType   = &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Display: "int"}
	floatType = &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Display: "float"}
)

// graphBuilder assembles small type graphs by hand.
type graphBuilder struct {
	graph *analyze.TypeGraph
}

func newGraph() *graphBuilder {
	g := analyze.NewTypeGraph()
	g.Packages[testPkg] = &analyze.PackageInfo{Path: testPkg, Name: "scene"}
	return &graphBuilder{graph: g}
}

func (b *graphBuilder) add(name string, kind analyze.TypeKind, supers ...string) *analyze.TypeInfo {
	info := &analyze.TypeInfo{ID: id(name), Kind: kind}
	for _, s := range supers {
		info.Supertypes = append(info.Supertypes, id(s))
	}
	b.graph.Types[info.ID] = info
	return info
}

func (b *graphBuilder) enum(name string, constants ...string) *analyze.TypeInfo {
	info := b.add(name, analyze.TypeKindEnum)
	info.Underlying = intType
	info.Constants = constants
	return info
}

func field(name string, typ *analyze.TypeInfo, tag string) analyze.FieldInfo {
	return analyze.FieldInfo{Name: name, Exported: true, Type: typ, Tag: reflect.StructTag(tag)}
}

// sceneGraph mirrors examples/scene.
func sceneGraph() *analyze.TypeGraph {
	b := newGraph()
	parent := b.add("Parent", analyze.TypeKindStruct)
	wave := b.enum("WaveType", "NONE", "SINE", "COSINE", "SAWTOOTH", "SQUARE", "CRAZY")

	child1 := b.add("Child1", analyze.TypeKindStruct, "Parent")
	child1.Fields = []analyze.FieldInfo{
		{Name: "Parent", Exported: true, Type: parent, Embedded: true},
		field("moveSpeed", floatType, `editor:""`),
		field("jumpSpeed", floatType, `editor:""`),
		field("startLives", intType, `editor:"Interactions"`),
		field("maxLives", intType, `editor:"Interactions"`),
	}

	child2 := b.add("Child2", analyze.TypeKindStruct, "Parent")
	child2.Fields = []analyze.FieldInfo{
		field("stackHeight", intType, `editor:"Properties"`),
		field("stackClass", parent, `editor:"Properties"`),
		field("stackWave", wave, `editor:"Properties"`),
	}

	return b.graph
}
