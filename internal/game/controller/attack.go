package controller

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/game/effect"
	"github.com/udisondev/towerdefence/internal/model"
)

// AttackController performs melee attacks. It drives the actor while in
// ATTACK; when the attack animation ends the actor's hit effects land on
// the target and the actor returns to IDLE.
type AttackController struct {
	actor  *model.Actor
	target *model.Actor
	rotate bool
}

// NewAttackController creates melee attack controller.
func NewAttackController() *AttackController {
	return &AttackController{rotate: true}
}

func (c *AttackController) Bind(a *model.Actor) {
	c.actor = a
}

// Target returns the current target (may be stale).
func (c *AttackController) Target() *model.Actor {
	return c.target
}

// SetTarget stores target. If the actor is not attacking yet and the
// target is in attack range, the actor faces it, stops and enters ATTACK.
func (c *AttackController) SetTarget(target *model.Actor) {
	c.target = target
	if c.actor.State() == model.StateAttack || !c.actor.InAttackRange(target) {
		return
	}

	if c.rotate {
		c.actor.RotateTo(target.Position().Sub(c.actor.Position()))
	}
	c.actor.ZeroVelocity()
	c.actor.ChangeState(model.StateAttack)
}

func (c *AttackController) NeedUpdate() bool {
	return c.actor.State() == model.StateAttack
}

func (c *AttackController) Update(float64) {}

func (c *AttackController) OnUpdateEnd() {}

func (c *AttackController) OnAnimationEnd() {
	if !c.strikeReady() {
		return
	}
	c.applyHitEffects(c.target)
	c.actor.ChangeState(model.StateIdle)
}

func (c *AttackController) Stop() {
	c.target = nil
}

func (c *AttackController) strikeReady() bool {
	return c.target != nil && c.actor.State() == model.StateAttack
}

// applyHitEffects puts attacker's hit effects on target.
// A target already removed from the world is skipped.
func (c *AttackController) applyHitEffects(target *model.Actor) {
	if !target.Alive() {
		return
	}
	if err := effect.Apply(target, c.actor.Statistics().HitEffects()); err != nil {
		slog.Warn("hit effects skipped",
			"attacker", c.actor.ObjectID(),
			"target", target.ObjectID(),
			"error", err)
	}
}
