package lights

import (
	"testing"

	"github.com/Isabella-22293/Proyecto2-Graficas/pkg/core"
)

func TestLight_Translate(t *testing.T) {
	light := NewLight(core.NewVec3(5, 5, -10), core.NewColor(255, 255, 255), 1.0)

	light.Translate(core.NewVec3(0, 0.1, 0))
	light.Translate(core.NewVec3(-0.1, 0, 0))

	expected := core.NewVec3(4.9, 5.1, -10)
	if light.Position.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected position %v, got %v", expected, light.Position)
	}
}
