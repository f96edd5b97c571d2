// Package anim provides headless animation handles driven by the
// simulation clock, so attack and death timings are deterministic.
package anim

// Clock reports simulation time in seconds.
type Clock interface {
	Now() float64
}

// ManualClock is advanced explicitly by the simulation loop.
type ManualClock struct {
	now float64
}

func (c *ManualClock) Now() float64 { return c.now }

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}

// Spec describes a clip in data files.
type Spec struct {
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

// Duration returns length of one pass.
func (s Spec) Duration() float64 {
	return float64(s.Frames) * s.FrameDuration
}

// Clip is a frame sequence played against a Clock.
// A non-looping clip is finished once its duration elapsed since Play.
type Clip struct {
	clock     Clock
	spec      Spec
	startedAt float64
	playing   bool
}

// NewClip creates stopped clip.
func NewClip(clock Clock, spec Spec) *Clip {
	return &Clip{clock: clock, spec: spec}
}

// Play restarts clip from the first frame.
func (c *Clip) Play() {
	c.startedAt = c.clock.Now()
	c.playing = true
}

func (c *Clip) Stop() {
	c.playing = false
}

// Playing reports whether Play was called after the last Stop.
func (c *Clip) Playing() bool {
	return c.playing
}

func (c *Clip) CurrentFrame() int {
	if !c.playing || c.spec.Frames <= 0 || c.spec.FrameDuration <= 0 {
		return 0
	}
	idx := int(c.elapsed() / c.spec.FrameDuration)
	if c.spec.Loop {
		return idx % c.spec.Frames
	}
	return min(idx, c.spec.Frames-1)
}

func (c *Clip) IsFinished() bool {
	if !c.playing || c.spec.Loop {
		return false
	}
	return c.elapsed() >= c.spec.Duration()
}

func (c *Clip) elapsed() float64 {
	return c.clock.Now() - c.startedAt
}
