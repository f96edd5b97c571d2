package effect

import "github.com/udisondev/towerdefence/internal/model"

// base implements model.LogicalEffect as a single-shot no-op.
// Concrete effects embed it and override what they need.
type base struct {
	target *model.Actor
	name   string
	unique bool
}

func (b *base) Name() string                { return b.name }
func (b *base) IsUnique() bool              { return b.unique }
func (b *base) NeedToPerform(float64) bool  { return true }
func (b *base) Perform()                    {}
func (b *base) IsFinished() bool            { return true }
func (b *base) OnRemove()                   {}
func (b *base) OnMerge(model.LogicalEffect) {}
func (b *base) Target() *model.Actor        { return b.target }

// TimeEffect is the base of effects that last for a while.
// Performs on the first tick, then every repeatTime when repeating.
// Finished once the remaining time drops below zero.
type TimeEffect struct {
	base

	remaining    float64
	repeat       bool
	repeatTime   float64
	toNextRepeat float64
	performed    bool
}

func newTimeEffect(target *model.Actor, name string, unique bool, duration float64) TimeEffect {
	return TimeEffect{
		base:      base{target: target, name: name, unique: unique},
		remaining: duration,
	}
}

func newRepeatingTimeEffect(target *model.Actor, name string, unique bool, duration, repeatTime float64) TimeEffect {
	t := newTimeEffect(target, name, unique, duration)
	t.repeat = true
	t.repeatTime = repeatTime
	t.toNextRepeat = repeatTime
	return t
}

// Remaining returns time left before the effect expires.
func (t *TimeEffect) Remaining() float64 {
	return t.remaining
}

func (t *TimeEffect) NeedToPerform(dt float64) bool {
	t.remaining -= dt
	if !t.performed {
		t.performed = true
		return true
	}

	if t.repeat {
		t.toNextRepeat -= dt
		if t.toNextRepeat < 0 {
			t.toNextRepeat = t.repeatTime
			return true
		}
	}
	return false
}

func (t *TimeEffect) IsFinished() bool {
	return t.remaining < 0
}

// OnMerge keeps the longer remaining time.
func (t *TimeEffect) OnMerge(other model.LogicalEffect) {
	if o, ok := other.(interface{ Remaining() float64 }); ok {
		t.remaining = max(t.remaining, o.Remaining())
	}
}
