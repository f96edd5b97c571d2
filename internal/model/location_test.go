package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	d, ok := Direction(V(0, 5))
	assert.True(t, ok)
	assert.InDelta(t, 1.0, d.Len(), 1e-9)

	_, ok = Direction(Vec{})
	assert.False(t, ok)
}

func TestHeading(t *testing.T) {
	assert.InDelta(t, 0.0, Heading(V(1, 0)), 1e-9)
	assert.InDelta(t, math.Pi/2, Heading(V(0, 1)), 1e-9)
}

func TestRect(t *testing.T) {
	r := RectAround(V(10, 10), 4, 2)

	assert.True(t, r.Contains(V(12, 11)))
	assert.False(t, r.Contains(V(12.1, 10)))
	assert.True(t, r.Intersects(RectAround(V(13, 10), 4, 2)))
	assert.False(t, r.Intersects(RectAround(V(20, 10), 4, 2)))
}

func TestWorldObject_Integrate(t *testing.T) {
	w := NewWorldObject(1, 2, 2)
	w.SetPosition(V(1, 1))
	w.SetVelocity(V(2, 0))

	w.Integrate(0.5)

	assert.Equal(t, V(2, 1), w.Position())
	assert.InDelta(t, 0.0, w.Angle(), 1e-9)
}
