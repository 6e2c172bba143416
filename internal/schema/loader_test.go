package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
package: example.com/scene
types:
  - name: Parent
  - name: Child1
    extends: [Parent]
    fields:
      - {name: moveSpeed, type: float, editor: true}
      - {name: startLives, type: int, editor: Interactions}
      - {name: secret, type: int}
      - {name: hidden, type: int, editor: false}
      - {name: blank, type: int, editor: ""}
  - name: WaveType
    enum: [NONE, SINE]
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "example.com/scene", f.Package)
	require.Len(t, f.Types, 3)

	child := f.Types[1]
	assert.Equal(t, []string{"Parent"}, child.Extends)
	require.Len(t, child.Fields, 5)
	assert.Equal(t, Editor{Editable: true}, child.Fields[0].Editor)
	assert.Equal(t, Editor{Editable: true, Group: "Interactions"}, child.Fields[1].Editor)
	assert.Equal(t, Editor{}, child.Fields[2].Editor)
	assert.Equal(t, Editor{}, child.Fields[3].Editor)
	assert.Equal(t, Editor{Editable: true}, child.Fields[4].Editor)

	assert.True(t, f.Types[2].IsEnum())
	assert.Equal(t, []string{"NONE", "SINE"}, f.Types[2].Enum)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("types: []\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, DefaultPackage, f.Package)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("types: [\n"))
	assert.ErrorContains(t, err, "failed to parse schema YAML")

	_, err = Parse([]byte("types:\n  - name: A\n    fields:\n      - {name: a, type: int, editor: [x]}\n"))
	assert.ErrorContains(t, err, "editor must be a bool or a group name")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"bad version", "version: \"2\"\ntypes: []\n", `unsupported schema version "2"`},
		{"missing type name", "types:\n  - fields: []\n", "types[0]: missing name"},
		{"duplicate type", "types:\n  - name: A\n  - name: A\n", "type A: declared twice"},
		{"unknown supertype", "types:\n  - name: A\n    extends: [B]\n", "type A: extends undeclared type B"},
		{"enum with fields", "types:\n  - name: E\n    enum: [X]\n    fields: [{name: a, type: int}]\n", "type E: enum types cannot declare fields"},
		{"missing field name", "types:\n  - name: A\n    fields: [{type: int}]\n", "type A: fields[0]: missing name"},
		{"duplicate field", "types:\n  - name: A\n    fields: [{name: a, type: int}, {name: a, type: int}]\n", "type A: field a declared twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid schema")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "..", "examples", "scene", "scene.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "field-inspector/examples/scene", f.Package)
	assert.Len(t, f.Types, 4)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_EditorRoundTrip(t *testing.T) {
	f := &File{
		Version: "1",
		Package: "example.com/scene",
		Types: []TypeDef{{
			Name: "Child",
			Fields: []FieldDef{
				{Name: "a", Type: "int", Editor: Editor{Editable: true}},
				{Name: "b", Type: "int", Editor: Editor{Editable: true, Group: "G"}},
				{Name: "c", Type: "int"},
			},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "editor: true")
	assert.Contains(t, string(data), "editor: G")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
