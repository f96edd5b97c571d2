package effect

import "github.com/udisondev/towerdefence/internal/model"

// HitEffect deals instant damage once.
type HitEffect struct {
	base
	damage float64
}

// NewHitEffect creates single-shot damage effect on target.
func NewHitEffect(target *model.Actor, damage float64) *HitEffect {
	return &HitEffect{
		base:   base{target: target, name: "hit"},
		damage: damage,
	}
}

func (h *HitEffect) Perform() {
	h.target.Hit(h.damage)
}

// Damage returns damage dealt on perform.
func (h *HitEffect) Damage() float64 {
	return h.damage
}
