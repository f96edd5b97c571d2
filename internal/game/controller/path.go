package controller

import "github.com/udisondev/towerdefence/internal/model"

// PathController walks the actor along a polyline.
//
// A waypoint counts as reached once the actor crosses the plane through
// it perpendicular to the approach direction: the dot product of the
// approach vector and (position − waypoint) turns non-positive. This does
// not depend on speed or frame time.
type PathController struct {
	actor    *model.Actor
	path     []model.Vec
	current  int
	approach model.Vec
	finished bool
}

// NewPathController creates controller without a path.
func NewPathController() *PathController {
	return &PathController{}
}

func (p *PathController) Bind(a *model.Actor) {
	p.actor = a
	p.onPointChange()
}

// SetPath replaces the path and resets the cursor to the first point.
func (p *PathController) SetPath(path []model.Vec) {
	p.path = append([]model.Vec(nil), path...)
	p.current = 0
	p.finished = false
	p.onPointChange()
}

// SetCurrentPoint moves the cursor. Spawners prime it to 1 so the actor,
// placed on path[0], heads for the second point.
func (p *PathController) SetCurrentPoint(index int) {
	p.current = index
	if p.current >= len(p.path) {
		p.finished = len(p.path) > 0
		return
	}
	p.onPointChange()
}

// CurrentPoint returns the cursor.
func (p *PathController) CurrentPoint() int {
	return p.current
}

// Finished reports whether the last waypoint has been passed or the
// controller was stopped.
func (p *PathController) Finished() bool {
	return p.finished
}

func (p *PathController) NeedUpdate() bool {
	return len(p.path) > 0 && !p.finished
}

func (p *PathController) Update(float64) {
	for p.reached() {
		p.current++
		if p.current >= len(p.path) {
			p.finished = true
			p.actor.Stop()
			return
		}
		p.onPointChange()
	}

	p.actor.GoToDirection(p.path[p.current].Sub(p.actor.Position()))
}

func (p *PathController) reached() bool {
	toGoal := p.actor.Position().Sub(p.path[p.current])
	return p.approach.Dot(toGoal) <= 0
}

// OnUpdateEnd zeroes velocity when a higher priority controller takes over.
func (p *PathController) OnUpdateEnd() {
	p.actor.ZeroVelocity()
}

func (p *PathController) OnAnimationEnd() {}

func (p *PathController) Stop() {
	p.finished = true
}

func (p *PathController) onPointChange() {
	if p.actor == nil || p.current >= len(p.path) {
		return
	}
	p.approach = p.actor.Position().Sub(p.path[p.current])
}
