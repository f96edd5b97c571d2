package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/towerdefence/internal/anim"
	"github.com/udisondev/towerdefence/internal/game/effect"
	"github.com/udisondev/towerdefence/internal/logic"
	"github.com/udisondev/towerdefence/internal/model"
	"github.com/udisondev/towerdefence/internal/wave"
	"github.com/udisondev/towerdefence/internal/world"
)

var (
	// ErrUnknownPath is returned for path indices outside the level's paths.
	ErrUnknownPath = errors.New("unknown path")
	// ErrNotPathFollower is returned when a wave object cannot walk a path.
	ErrNotPathFollower = errors.New("object cannot follow a path")
	// ErrOccupied is returned when a tower is placed over another actor.
	ErrOccupied = errors.New("position occupied")
)

var (
	_ model.ObjectSink   = (*Level)(nil)
	_ wave.Spawner       = (*Level)(nil)
	_ logic.TowerPlacer  = (*Level)(nil)
	_ effect.ActorSource = (*Level)(nil)
)

// Config holds everything a Level needs besides its documents.
type Config struct {
	Clock     *anim.ManualClock
	Factory   *Factory
	Paths     [][]model.Vec
	StartGold int
}

// Level is the live scene: the object set, the deferred spawn queue,
// paths, and the managers updated every frame.
type Level struct {
	clock   *anim.ManualClock
	factory *Factory
	paths   [][]model.Vec

	objects []model.Object
	pending []model.Object

	grid *world.Grid
	near []int

	waves   *wave.Manager
	effects *effect.Manager
	logic   *logic.Manager

	frame uint64
}

// NewLevel creates empty level with wave, effect and logic managers wired to it.
func NewLevel(cfg Config) *Level {
	clock := cfg.Clock
	if clock == nil {
		clock = &anim.ManualClock{}
	}
	factory := cfg.Factory
	if factory == nil {
		factory = NewFactory()
	}

	l := &Level{
		clock:   clock,
		factory: factory,
		paths:   clonePaths(cfg.Paths),
		grid:    world.NewGrid(world.DefaultCellSize),
	}
	l.waves = wave.NewManager(l)
	l.effects = effect.NewManager(l)
	l.logic = logic.NewManager(cfg.StartGold, l.waves, l)
	return l
}

func (l *Level) Waves() *wave.Manager     { return l.waves }
func (l *Level) Logic() *logic.Manager    { return l.logic }
func (l *Level) Clock() *anim.ManualClock { return l.clock }
func (l *Level) Factory() *Factory        { return l.factory }

// Frame returns number of completed frames.
func (l *Level) Frame() uint64 {
	return l.frame
}

// Paths returns level paths keyed by index.
func (l *Level) Paths() [][]model.Vec {
	return l.paths
}

// Path returns path by index.
func (l *Level) Path(index int) ([]model.Vec, bool) {
	if index < 0 || index >= len(l.paths) {
		return nil, false
	}
	return l.paths[index], true
}

// Update runs one frame:
//
//  1. wave spawns go to the pending queue
//  2. every live object updates (AI, controller, integration, animation end)
//  3. attack-range visibility is recomputed
//  4. logical effects tick
//  5. pending objects join the live set and are reported to logic
//  6. objects that left the world are dropped
//  7. logic decides the outcome
//
// Objects created during the frame are not updated until the next one.
func (l *Level) Update(dt float64) {
	l.clock.Advance(dt)
	l.waves.Update(dt)

	for _, obj := range l.objects {
		if obj.Alive() {
			obj.Update(dt)
		}
	}

	l.refreshVisibility()
	l.effects.Update(dt)
	l.flushPending()
	l.removeDead()
	l.logic.Update(dt)
	l.frame++
}

// Spawn queues obj; it joins the live set at the end of the frame.
// Implements model.ObjectSink.
func (l *Level) Spawn(obj model.Object) {
	if living, ok := obj.(model.Living); ok {
		living.AsActor().SetSink(l)
	}
	l.pending = append(l.pending, obj)
}

func (l *Level) flushPending() {
	if len(l.pending) == 0 {
		return
	}
	batch := l.pending
	l.pending = nil

	for _, obj := range batch {
		l.objects = append(l.objects, obj)
		l.logic.OnObjectAddedToScene(obj)
	}
}

func (l *Level) removeDead() {
	l.objects = slices.DeleteFunc(l.objects, func(obj model.Object) bool {
		return !obj.Alive()
	})
}

// refreshVisibility fills every living actor's attack-range list with the
// living actors within attack_range + r1 + r2, in live-set order.
func (l *Level) refreshVisibility() {
	actors := l.LivingActors()

	l.grid.Reset()
	maxRadius := 0.0
	for i, a := range actors {
		if a.IsDead() {
			continue
		}
		l.grid.Insert(i, a.Position())
		maxRadius = max(maxRadius, a.Radius())
	}

	for i, a := range actors {
		if a.IsDead() {
			a.SetActorsInAttackRange(nil)
			continue
		}

		var inRange []*model.Actor
		reach := a.Statistics().AttackRange() + a.Radius()
		l.near = l.grid.Near(a.Position(), reach+maxRadius, l.near[:0])
		for _, j := range l.near {
			if j == i {
				continue
			}
			b := actors[j]
			if a.Position().Sub(b.Position()).Len() < reach+b.Radius() {
				inRange = append(inRange, b)
			}
		}
		a.SetActorsInAttackRange(inRange)
	}
}

// LivingActors returns actors currently in the world (including dying ones).
// Implements effect.ActorSource.
func (l *Level) LivingActors() []*model.Actor {
	out := make([]*model.Actor, 0, len(l.objects))
	for _, obj := range l.objects {
		if living, ok := obj.(model.Living); ok && obj.Alive() {
			out = append(out, living.AsActor())
		}
	}
	return out
}

// Objects returns a snapshot of the live set.
func (l *Level) Objects() []model.Object {
	return slices.Clone(l.objects)
}

// PendingCount returns number of objects waiting for the end of frame.
func (l *Level) PendingCount() int {
	return len(l.pending)
}

// ForEachActor calls fn for every living actor until fn returns false.
func (l *Level) ForEachActor(fn func(model.Living) bool) {
	for _, obj := range l.objects {
		living, ok := obj.(model.Living)
		if !ok || !obj.Alive() {
			continue
		}
		if !fn(living) {
			return
		}
	}
}

// ActorAt returns the first living actor whose rect contains point and
// that passes filter (nil accepts all).
func (l *Level) ActorAt(point model.Vec, filter func(*model.Actor) bool) model.Living {
	var found model.Living
	l.ForEachActor(func(living model.Living) bool {
		a := living.AsActor()
		if !a.Rect().Contains(point) || (filter != nil && !filter(a)) {
			return true
		}
		found = living
		return false
	})
	return found
}

// ClassProperties returns properties of a registered type.
// Implements logic.TowerPlacer.
func (l *Level) ClassProperties(name string) (model.ClassProperties, bool) {
	return l.factory.ClassProperties(name)
}

// CreateOnScene builds object name, lets setup configure it and queues it.
// The object is dropped with ErrOccupied when its rect overlaps another
// actor, live or still pending.
// Implements logic.TowerPlacer.
func (l *Level) CreateOnScene(name string, setup func(*model.Actor)) (model.Object, error) {
	living, err := l.factory.Create(name)
	if err != nil {
		return nil, err
	}
	a := living.AsActor()
	if setup != nil {
		setup(a)
	}
	if other := l.collidingActor(a.Rect()); other != nil {
		return nil, fmt.Errorf("placing %q at %v over object %d: %w",
			name, a.Position(), other.ObjectID(), ErrOccupied)
	}
	l.Spawn(living)
	return living, nil
}

// collidingActor returns the first non-dead actor, live or pending,
// whose rect intersects r.
func (l *Level) collidingActor(r model.Rect) model.Living {
	for _, set := range [][]model.Object{l.objects, l.pending} {
		for _, obj := range set {
			living, ok := obj.(model.Living)
			if !ok || !obj.Alive() || living.AsActor().IsDead() {
				continue
			}
			if living.AsActor().Rect().Intersects(r) {
				return living
			}
		}
	}
	return nil
}

// SpawnOnPath creates name at the start of path pathIndex.
// Implements wave.Spawner.
func (l *Level) SpawnOnPath(name string, pathIndex int) error {
	path, ok := l.Path(pathIndex)
	if !ok {
		return fmt.Errorf("spawning %q on path %d: %w", name, pathIndex, ErrUnknownPath)
	}

	living, err := l.factory.Create(name)
	if err != nil {
		return err
	}
	if !wave.PlaceOnPath(living.AsActor(), path) {
		return fmt.Errorf("spawning %q: %w", name, ErrNotPathFollower)
	}

	l.Spawn(living)
	return nil
}

// BuyTower places tower name at position if its rect is free and the
// player can pay for it. Nothing is charged on failure.
func (l *Level) BuyTower(name string, position model.Vec) (model.Object, error) {
	return l.logic.BuyTower(name, position)
}

// EvolveAt evolves the player's actor under point. Returns false when
// there is none or evolution is not allowed.
func (l *Level) EvolveAt(point model.Vec) bool {
	living := l.ActorAt(point, func(a *model.Actor) bool {
		return a.Team() == model.PlayerTeam && !a.IsDead()
	})
	if living == nil {
		return false
	}

	ok := l.logic.Evolve(living)
	if !ok {
		slog.Debug("evolution rejected",
			"objectID", living.ObjectID(),
			"gold", l.logic.State().PlayerGold)
	}
	return ok
}

func clonePaths(paths [][]model.Vec) [][]model.Vec {
	out := make([][]model.Vec, len(paths))
	for i, p := range paths {
		out[i] = slices.Clone(p)
	}
	return out
}

// Finished reports whether the session outcome is decided.
// Implements sim.World.
func (l *Level) Finished() bool {
	return l.logic.Finished()
}
