package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-editor/math"
	"scene-editor/scene"
)

func TestSelectSingleReplacesSelection(t *testing.T) {
	sel := NewSelection()
	a := scene.NewNode("a")
	b := scene.NewNode("b")

	sel.SelectSingle(a)
	sel.SelectSingle(b)

	assert.False(t, sel.IsSelected(a))
	assert.True(t, sel.IsSelected(b))
	assert.Equal(t, b, sel.ActiveObject)
}

func TestToggleObject(t *testing.T) {
	sel := NewSelection()
	a := scene.NewNode("a")
	b := scene.NewNode("b")

	sel.ToggleObject(a)
	sel.ToggleObject(b)
	assert.True(t, sel.IsSelected(a))
	assert.Equal(t, b, sel.ActiveObject)

	sel.ToggleObject(b)
	assert.False(t, sel.IsSelected(b))
	assert.Equal(t, a, sel.ActiveObject)

	sel.ToggleObject(a)
	assert.False(t, sel.HasSelection())
	assert.Nil(t, sel.ActiveObject)
}

func TestGetSelectionCenter(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, math.Vec3Zero, sel.GetSelectionCenter())

	a := scene.NewNode("a")
	a.SetPosition(math.NewVec3(0, 0, 0))
	b := scene.NewNode("b")
	b.SetPosition(math.NewVec3(4, 2, -6))
	sel.ToggleObject(a)
	sel.ToggleObject(b)

	center := sel.GetSelectionCenter()
	assert.True(t, center.AlmostEqual(math.NewVec3(2, 1, -3), 1e-6))
}
