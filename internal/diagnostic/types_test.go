package diagnostic

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:      CodeReflectionFault,
		Message:   "malformed struct tag",
		TypeName:  "example.com/faulty.Broken",
		FieldPath: "Broken.Speed",
	}
	assert.Equal(t, "[example.com/faulty.Broken] Broken.Speed: [reflection-fault] malformed struct tag", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[no-fields] x", Diagnostic{Code: CodeNoFields, Message: "x"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.Empty(t, d.All())

	d.AddInfo(CodeNoEditable, "no editable fields", "p.Sphere", "")
	assert.False(t, d.HasErrors())

	d.AddError(CodeReflectionFault, "bad tag", "p.Broken", "Broken.Speed")
	assert.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, "Broken.Speed", all[0].FieldPath)
	assert.Equal(t, DiagnosticInfo, all[1].Severity)
}

func TestDiagnostics_Log(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeNoFields, "non-struct participant (interface) has no fields", "p.Solid", "")
	d.AddError(CodeReflectionFault, "bad tag", "p.Broken", "")

	var buf bytes.Buffer
	d.Log(log.New(&buf, "", 0))

	assert.Equal(t,
		"error: [p.Broken]: [reflection-fault] bad tag\n"+
			"info: [p.Solid]: [no-fields] non-struct participant (interface) has no fields\n",
		buf.String())
}
