package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{
		"field-inspector/examples/scene.Child1",
		"field-inspector/examples/scene.Child2",
		"field-inspector/examples/scene.Parent",
		"field-inspector/examples/scene.WaveType",
	}

	assert.Equal(t, "field-inspector/examples/scene.Parent",
		Suggest("field-inspector/examples/scene.Parnet", candidates))
	assert.Equal(t, "field-inspector/examples/scene.WaveType",
		Suggest("field-inspector/examples/scene.wave_type", candidates))
	assert.Equal(t, "field-inspector/examples/scene.Child1",
		Suggest("field-inspector/examples/scene.Child3", candidates), "ties go to the earliest candidate")
}

func TestSuggest_NoCloseMatch(t *testing.T) {
	assert.Empty(t, Suggest("Parent", []string{"Configuration", "Renderer"}))
	assert.Empty(t, Suggest("Parent", nil))
}
