package effect

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/model"
)

// SlowEffect multiplies target speed while active.
// Unique: a second slow merges into the active one, keeping the longer
// remaining time and the smaller multiplier. At most one modifier is
// installed at a time.
type SlowEffect struct {
	TimeEffect

	modifier *model.StatModifier
	applied  bool
}

// NewSlowEffect creates slow with speed multiplier percent (0.5 = half speed).
func NewSlowEffect(target *model.Actor, duration, percent float64) *SlowEffect {
	return &SlowEffect{
		TimeEffect: newTimeEffect(target, "slow", true, duration),
		modifier:   model.NewMulModifier(model.StatSpeed, percent),
	}
}

// Multiplier returns the active speed multiplier.
func (s *SlowEffect) Multiplier() float64 {
	return s.modifier.Value
}

// Modifier returns the modifier instance this effect installs.
func (s *SlowEffect) Modifier() *model.StatModifier {
	return s.modifier
}

func (s *SlowEffect) Perform() {
	if s.applied {
		return
	}
	s.target.AddModifier(s.modifier)
	s.applied = true
}

func (s *SlowEffect) OnMerge(other model.LogicalEffect) {
	s.TimeEffect.OnMerge(other)

	o, ok := other.(*SlowEffect)
	if !ok || o.modifier.Value >= s.modifier.Value {
		return
	}

	slog.Debug("slow replaced by stronger one",
		"target", s.target.ObjectID(),
		"from", s.modifier.Value,
		"to", o.modifier.Value)

	if !s.applied {
		s.modifier = o.modifier
		return
	}
	s.target.RemoveModifier(s.modifier)
	s.modifier = o.modifier
	s.target.AddModifier(s.modifier)
}

func (s *SlowEffect) OnRemove() {
	if !s.applied {
		return
	}
	s.target.RemoveModifier(s.modifier)
	s.applied = false
}
