package controller

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/model"
)

// RangeAttackController fires a Bullet at the end of the attack
// animation instead of hitting directly. Only one bullet per controller
// is in flight; the bullet returns the owner to IDLE when it lands.
type RangeAttackController struct {
	AttackController
	bullet *Bullet
}

// NewRangeAttackController creates ranged attack controller.
func NewRangeAttackController() *RangeAttackController {
	return &RangeAttackController{AttackController: AttackController{rotate: true}}
}

// NewNotRotatingRangeAttackController creates ranged attack controller
// that keeps the actor's facing (turret-like towers).
func NewNotRotatingRangeAttackController() *RangeAttackController {
	return &RangeAttackController{}
}

// Bullet returns the last fired bullet (may be dead).
func (c *RangeAttackController) Bullet() *Bullet {
	return c.bullet
}

func (c *RangeAttackController) OnAnimationEnd() {
	if !c.strikeReady() {
		return
	}
	if c.bullet != nil && c.bullet.Alive() {
		return
	}

	sink := c.actor.Sink()
	if sink == nil {
		slog.Warn("ranged attack without object sink",
			"attacker", c.actor.ObjectID(),
			"name", c.actor.Name())
		c.actor.ChangeState(model.StateIdle)
		return
	}

	c.bullet = NewBullet(c.actor, c.target)
	sink.Spawn(c.bullet)
}
