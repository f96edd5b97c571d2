package model

import (
	"log/slog"
	"slices"

	"github.com/looplab/fsm"
)

// Team separates the player's side from the attackers.
type Team int8

const (
	EnemyTeam Team = iota
	PlayerTeam
)

func (t Team) String() string {
	if t == PlayerTeam {
		return "player"
	}
	return "enemy"
}

// Callback identifies an actor lifecycle hook.
type Callback int8

const (
	// CallbackKill fires once when the actor leaves the world.
	CallbackKill Callback = iota
	// CallbackEvolve fires after a successful evolution.
	CallbackEvolve
)

// BaseClassName — class name of the player's base; AttackOnlyBase AI targets it.
const BaseClassName = "Base"

// ClassProperties identify actor type (monster or tower).
type ClassProperties struct {
	Name     string `yaml:"name"`
	GoldGain int    `yaml:"gold_gain"`
	Cost     int    `yaml:"cost"`
}

// Living is implemented by scene objects backed by an Actor.
type Living interface {
	Object
	AsActor() *Actor
}

// Actor — существо на сцене: монстр, башня или база.
// Связывает характеристики, контроллеры, AI, эффекты и анимации.
type Actor struct {
	WorldObject

	props ClassProperties
	team  Team
	hp    float64

	machine *fsm.FSM
	state   ActorState

	baseStats *Statistics
	stats     *Statistics
	modifiers []*StatModifier

	controllers []Controller
	active      Controller
	ai          AI

	effects []LogicalEffect
	inRange []*Actor

	animations map[ActorState]Animation
	animation  Animation

	callbacks map[Callback]func(*Actor)
	sink      ObjectSink
}

// NewActor creates an actor in IDLE with hp = max_health of base.
// base is copied; the caller keeps ownership of its instance.
func NewActor(props ClassProperties, base *Statistics, width, height float64) *Actor {
	a := &Actor{
		WorldObject: NewWorldObject(NextActorID(), width, height),
		props:       props,
		state:       StateIdle,
		animations:  make(map[ActorState]Animation),
		callbacks:   make(map[Callback]func(*Actor)),
	}
	a.machine = newStateMachine(a.onStateEnter)
	a.SetBaseStatistics(base)
	a.hp = a.stats.MaxHealth()
	return a
}

// AsActor implements Living.
func (a *Actor) AsActor() *Actor {
	return a
}

// Properties returns class properties.
func (a *Actor) Properties() ClassProperties {
	return a.props
}

// Name returns class name.
func (a *Actor) Name() string {
	return a.props.Name
}

func (a *Actor) Team() Team {
	return a.team
}

func (a *Actor) SetTeam(t Team) {
	a.team = t
}

func (a *Actor) HP() float64 {
	return a.hp
}

func (a *Actor) SetHP(hp float64) {
	a.hp = hp
}

// Update runs one frame: AI, one controller, integration, animation end.
func (a *Actor) Update(dt float64) {
	if !a.alive {
		return
	}

	if a.ai != nil {
		a.ai.Update(dt)
	}

	a.updateControllers(dt)
	a.Integrate(dt)

	if a.animation == nil || a.animation.IsFinished() {
		for _, c := range a.controllers {
			c.OnAnimationEnd()
		}
	}
}

// updateControllers runs the first controller that needs an update.
func (a *Actor) updateControllers(dt float64) {
	for _, c := range a.controllers {
		if !c.NeedUpdate() {
			continue
		}
		if a.active != nil && a.active != c {
			a.active.OnUpdateEnd()
		}
		c.Update(dt)
		a.active = c
		return
	}
}

// Hit subtracts damage. hp strictly below zero kills the actor.
// Hits on a dead actor are ignored.
func (a *Actor) Hit(damage float64) {
	if a.state == StateDeath {
		return
	}
	a.hp -= damage
	if a.hp < 0 {
		a.onDeath()
	}
}

func (a *Actor) onDeath() {
	a.StopControllers()
	a.ZeroVelocity()
	a.ChangeState(StateDeath)

	slog.Debug("actor died",
		"objectID", a.ObjectID(),
		"name", a.props.Name,
		"team", a.team)
}

// Kill removes actor from the world and fires CallbackKill.
// Repeated calls are no-ops.
func (a *Actor) Kill() {
	if !a.Remove() {
		return
	}
	a.fire(CallbackKill)
}

// AddController appends controller with lowest priority so far.
func (a *Actor) AddController(c Controller) {
	c.Bind(a)
	a.controllers = append(a.controllers, c)
}

// Controllers returns controllers in priority order.
func (a *Actor) Controllers() []Controller {
	return slices.Clone(a.controllers)
}

// StopControllers stops every controller.
func (a *Actor) StopControllers() {
	for _, c := range a.controllers {
		c.Stop()
	}
}

// FindController returns the first controller implementing T.
func FindController[T any](a *Actor) (T, bool) {
	for _, c := range a.controllers {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// SetAI attaches AI policy.
func (a *Actor) SetAI(ai AI) {
	ai.Bind(a)
	a.ai = ai
}

// AI returns attached policy or nil.
func (a *Actor) AI() AI {
	return a.ai
}

// BaseStatistics returns writable base layer. Call RecalculateStatistics after edits.
func (a *Actor) BaseStatistics() *Statistics {
	return a.baseStats
}

// SetBaseStatistics replaces base layer with a copy of s and recalculates.
func (a *Actor) SetBaseStatistics(s *Statistics) {
	if s == nil {
		s = NewStatistics()
	}
	a.baseStats = s.Clone()
	a.RecalculateStatistics()
}

// Statistics returns read-only derived snapshot.
func (a *Actor) Statistics() *Statistics {
	return a.stats
}

// RecalculateStatistics replaces derived statistics wholesale.
func (a *Actor) RecalculateStatistics() {
	a.stats = a.baseStats.GetModifiedStatistics(a.modifiers)
}

// statisticsChanged recalculates and rescales velocity to the new speed.
func (a *Actor) statisticsChanged() {
	a.RecalculateStatistics()
	if dir, ok := Direction(a.velocity); ok {
		a.velocity = dir.Mul(a.stats.Speed())
	}
}

// AddModifier installs modifier and recalculates statistics.
func (a *Actor) AddModifier(m *StatModifier) {
	a.modifiers = append(a.modifiers, m)
	a.statisticsChanged()
}

// RemoveModifier removes exactly m. Returns false if m was not installed.
func (a *Actor) RemoveModifier(m *StatModifier) bool {
	i := slices.Index(a.modifiers, m)
	if i < 0 {
		return false
	}
	a.modifiers = slices.Delete(a.modifiers, i, i+1)
	a.statisticsChanged()
	return true
}

// Modifiers returns installed modifiers.
func (a *Actor) Modifiers() []*StatModifier {
	return slices.Clone(a.modifiers)
}

// AddLogicalEffect attaches effect. Unique effects merge into an active
// effect with the same name instead of stacking.
func (a *Actor) AddLogicalEffect(e LogicalEffect) {
	if e.IsUnique() {
		if prev := a.FindLogicalEffect(e.Name()); prev != nil {
			prev.OnMerge(e)
			return
		}
	}
	a.effects = append(a.effects, e)
}

// RemoveLogicalEffect detaches effect instance (OnRemove is caller's job).
func (a *Actor) RemoveLogicalEffect(e LogicalEffect) {
	if i := slices.Index(a.effects, e); i >= 0 {
		a.effects = slices.Delete(a.effects, i, i+1)
	}
}

// FindLogicalEffect returns the first active effect named name, or nil.
func (a *Actor) FindLogicalEffect(name string) LogicalEffect {
	for _, e := range a.effects {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// LogicalEffects returns a snapshot of active effects.
func (a *Actor) LogicalEffects() []LogicalEffect {
	return slices.Clone(a.effects)
}

// GoToDirection sets velocity along direction at current speed and enters MOVE.
// A zero direction stops the actor instead.
func (a *Actor) GoToDirection(direction Vec) {
	dir, ok := Direction(direction)
	if !ok {
		a.Stop()
		return
	}
	a.SetVelocity(dir.Mul(a.stats.Speed()))
	a.ChangeState(StateMove)
}

// Stop zeroes velocity and enters IDLE.
func (a *Actor) Stop() {
	a.ZeroVelocity()
	a.ChangeState(StateIdle)
}

// ActorsInAttackRange returns visible living actors supplied by the scene.
func (a *Actor) ActorsInAttackRange() []*Actor {
	return a.inRange
}

// SetActorsInAttackRange replaces visibility list (scene, once per frame).
func (a *Actor) SetActorsInAttackRange(actors []*Actor) {
	a.inRange = actors
}

// InAttackRange reports whether target is in the current visibility list.
func (a *Actor) InAttackRange(target *Actor) bool {
	return target != nil && slices.Contains(a.inRange, target)
}

// SetAnimation binds animation to state. If the actor is in that state
// the new animation replaces the current one immediately.
func (a *Actor) SetAnimation(state ActorState, anim Animation) {
	a.animations[state] = anim
	if state != a.state {
		return
	}
	if a.animation != nil {
		a.animation.Stop()
	}
	a.animation = anim
	if anim != nil {
		anim.Play()
	}
}

// Animation returns animation bound to state.
func (a *Actor) Animation(state ActorState) Animation {
	return a.animations[state]
}

// CurrentAnimation returns animation of current state or nil.
func (a *Actor) CurrentAnimation() Animation {
	return a.animation
}

func (a *Actor) onStateEnter(_, to ActorState) {
	if a.animation != nil {
		a.animation.Stop()
	}
	a.state = to
	a.animation = a.animations[to]
	if a.animation != nil {
		a.animation.Play()
	}
}

// SetCallback installs hook, replacing a previous one of the same type.
func (a *Actor) SetCallback(cb Callback, fn func(*Actor)) {
	a.callbacks[cb] = fn
}

// RemoveCallback removes hook.
func (a *Actor) RemoveCallback(cb Callback) {
	delete(a.callbacks, cb)
}

func (a *Actor) fire(cb Callback) {
	if fn, ok := a.callbacks[cb]; ok {
		fn(a)
	}
}

// Sink returns the scene sink used to spawn projectiles.
func (a *Actor) Sink() ObjectSink {
	return a.sink
}

// SetSink sets the scene sink (set by scene on placement).
func (a *Actor) SetSink(s ObjectSink) {
	a.sink = s
}
