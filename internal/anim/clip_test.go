package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip_OneShot(t *testing.T) {
	clock := &ManualClock{}
	c := NewClip(clock, Spec{Frames: 4, FrameDuration: 0.25})

	assert.False(t, c.IsFinished(), "stopped clip never finishes")

	clock.Advance(1)
	c.Play()
	assert.Equal(t, 0, c.CurrentFrame())

	clock.Advance(0.5)
	assert.Equal(t, 2, c.CurrentFrame())
	assert.False(t, c.IsFinished())

	clock.Advance(0.5)
	assert.True(t, c.IsFinished())
	assert.Equal(t, 3, c.CurrentFrame())

	c.Play()
	assert.False(t, c.IsFinished(), "play restarts the clip")
}

func TestClip_Loop(t *testing.T) {
	clock := &ManualClock{}
	c := NewClip(clock, Spec{Frames: 2, FrameDuration: 0.5, Loop: true})
	c.Play()

	clock.Advance(1.5)

	assert.Equal(t, 1, c.CurrentFrame())
	assert.False(t, c.IsFinished())
}

func TestClip_Stop(t *testing.T) {
	clock := &ManualClock{}
	c := NewClip(clock, Spec{Frames: 1, FrameDuration: 0.1})
	c.Play()
	clock.Advance(1)
	c.Stop()

	assert.False(t, c.Playing())
	assert.False(t, c.IsFinished())
	assert.Equal(t, 0, c.CurrentFrame())
}

func TestClip_EmptyFinishesImmediately(t *testing.T) {
	c := NewClip(&ManualClock{}, Spec{})
	c.Play()

	assert.True(t, c.IsFinished())
	assert.Equal(t, 0, c.CurrentFrame())
}
