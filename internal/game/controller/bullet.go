package controller

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/game/effect"
	"github.com/udisondev/towerdefence/internal/model"
)

const bulletSize = 4

// Bullet is a homing projectile fired by a RangeAttackController.
// It lands once the vector travelled from the start and the vector to
// the target point in opposite directions (the target was overshot).
type Bullet struct {
	model.WorldObject

	owner   *model.Actor
	target  *model.Actor
	start   model.Vec
	speed   float64
	image   string
	effects []model.EffectSpec
}

// NewBullet creates bullet at owner's position carrying owner's hit effects.
func NewBullet(owner, target *model.Actor) *Bullet {
	stats := owner.Statistics()
	b := &Bullet{
		WorldObject: model.NewWorldObject(model.NextProjectileID(), bulletSize, bulletSize),
		owner:       owner,
		target:      target,
		start:       owner.Position(),
		speed:       stats.BulletSpeed(),
		image:       stats.BulletImage(),
		effects:     stats.HitEffects(),
	}
	b.SetPosition(owner.Position())
	return b
}

func (b *Bullet) Owner() *model.Actor  { return b.owner }
func (b *Bullet) Target() *model.Actor { return b.target }
func (b *Bullet) Image() string        { return b.image }

func (b *Bullet) Update(dt float64) {
	if !b.Alive() {
		return
	}

	if !b.target.Alive() {
		b.release()
		return
	}

	b.Integrate(dt)

	travelled := b.Position().Sub(b.start)
	toGoal := b.target.Position().Sub(b.Position())
	if model.IsZero(toGoal) || travelled.Dot(toGoal) < 0 {
		b.hit()
		return
	}

	dir, _ := model.Direction(toGoal)
	b.SetVelocity(dir.Mul(b.speed))
}

func (b *Bullet) hit() {
	if err := effect.Apply(b.target, b.effects); err != nil {
		slog.Warn("bullet effects skipped",
			"bullet", b.ObjectID(),
			"target", b.target.ObjectID(),
			"error", err)
	}
	b.release()
}

// release returns the owner to IDLE and removes the bullet.
func (b *Bullet) release() {
	b.owner.ChangeState(model.StateIdle)
	b.Remove()
}
