package controller

import "github.com/udisondev/towerdefence/internal/model"

// DeathController holds a dead actor until its death animation ends,
// then removes it from the world.
type DeathController struct {
	actor *model.Actor
}

func NewDeathController() *DeathController {
	return &DeathController{}
}

func (c *DeathController) Bind(a *model.Actor) { c.actor = a }
func (c *DeathController) NeedUpdate() bool    { return c.actor.State() == model.StateDeath }
func (c *DeathController) Update(float64)      {}
func (c *DeathController) OnUpdateEnd()        {}
func (c *DeathController) Stop()               {}

func (c *DeathController) OnAnimationEnd() {
	if c.actor.State() == model.StateDeath {
		c.actor.Kill()
	}
}
