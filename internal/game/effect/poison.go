package effect

import "github.com/udisondev/towerdefence/internal/model"

// PoisonEffect deals damage on attach and then every repeat interval
// until the duration runs out. Poisons stack.
type PoisonEffect struct {
	TimeEffect
	damage float64
}

// NewPoisonEffect creates repeating damage effect.
func NewPoisonEffect(target *model.Actor, duration, damage, repeatTime float64) *PoisonEffect {
	return &PoisonEffect{
		TimeEffect: newRepeatingTimeEffect(target, "poison", false, duration, repeatTime),
		damage:     damage,
	}
}

func (p *PoisonEffect) Perform() {
	p.target.Hit(p.damage)
}
