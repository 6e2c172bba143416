package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePath(t *testing.T) {
	p1 := NewTypePath("Child2")
	assert.Equal(t, "Child2", p1.String())

	p2 := p1.Field("StackClass")
	assert.Equal(t, "Child2.StackClass", p2.String())

	p3 := p2.Field("Depth")
	assert.Equal(t, "Child2.StackClass.Depth", p3.String())
	assert.Equal(t, "Child2", p1.String(), "paths are immutable")
}

func TestTypeStringer_GoTypes(t *testing.T) {
	graph, err := Load(context.Background(), scenePkg, shapesPkg)
	require.NoError(t, err)

	stringer := NewTypeStringer()
	fieldType := func(id TypeID, name string) *TypeInfo {
		info := graph.GetType(id)
		require.NotNil(t, info)
		for i := range info.Fields {
			if info.Fields[i].Name == name {
				return info.Fields[i].Type
			}
		}
		t.Fatalf("field %s.%s not found", id, name)
		return nil
	}

	assert.Equal(t, "float32", stringer.TypeString(fieldType(sceneID("Child1"), "MoveSpeed"), scenePkg))
	assert.Equal(t, "Parent", stringer.TypeString(fieldType(sceneID("Child2"), "StackClass"), scenePkg))
	assert.Equal(t, "WaveType", stringer.TypeString(fieldType(sceneID("Child2"), "StackWave"), scenePkg))
	assert.Equal(t, "scene.WaveType", stringer.TypeString(fieldType(sceneID("Child2"), "StackWave"), shapesPkg))

	assert.Equal(t, "*Circle", stringer.TypeString(fieldType(shapesID("Square"), "Inner"), shapesPkg))
	assert.Equal(t, "[]Shape", stringer.TypeString(fieldType(shapesID("Square"), "Children"), shapesPkg))
	assert.Equal(t, "time.Time", stringer.TypeString(fieldType(shapesID("Square"), "Created"), shapesPkg))
}

func TestTypeStringer_SchemaTypes(t *testing.T) {
	stringer := NewTypeStringer()
	parent := &TypeInfo{ID: TypeID{PkgPath: "example.com/scene", Name: "Parent"}, Kind: TypeKindStruct}

	assert.Equal(t, "float", stringer.TypeString(&TypeInfo{Kind: TypeKindBasic, Display: "float"}, "example.com/scene"))
	assert.Equal(t, "Parent", stringer.TypeString(parent, "example.com/scene"))
	assert.Equal(t, "scene.Parent", stringer.TypeString(parent, "example.com/other"))
	assert.Equal(t, "*Parent", stringer.TypeString(&TypeInfo{Kind: TypeKindPointer, ElemType: parent}, "example.com/scene"))
	assert.Equal(t, "[]Parent", stringer.TypeString(&TypeInfo{Kind: TypeKindSlice, ElemType: parent}, "example.com/scene"))
	assert.Equal(t, "unknown", stringer.TypeString(&TypeInfo{Kind: TypeKindMap}, "example.com/scene"))
}

func TestTypeStringer_FieldPath(t *testing.T) {
	stringer := NewTypeStringer()

	assert.Equal(t, "Child1.MoveSpeed", stringer.FieldPath("Child1", "MoveSpeed"))
	assert.Equal(t, "Child2", stringer.FieldPath("Child2"))
}

func TestTypeStringer_NilType(t *testing.T) {
	stringer := NewTypeStringer()
	assert.Equal(t, "<nil>", stringer.TypeString(nil, ""))
}
