package model

import "log/slog"

// EvolutionLevel — one upgrade step: new base statistics, its price and
// optional animation overrides.
type EvolutionLevel struct {
	Statistics *Statistics
	Cost       int
	Animations map[ActorState]Animation
}

// Evolver is implemented by actors that can be upgraded.
type Evolver interface {
	Living
	HasMaxLevel() bool
	CurrentEvolutionCost() (int, bool)
	CurrentEvolutionLevel() int
	LevelCount() int
	Evolve() bool
}

// EvolvingActor — актёр с уровнями эволюции (башни).
// Уровни фиксируются при создании и больше не меняются.
type EvolvingActor struct {
	*Actor

	levels  []EvolutionLevel
	current int
}

// NewEvolvingActor wraps actor with a private copy of levels.
func NewEvolvingActor(a *Actor, levels []EvolutionLevel) *EvolvingActor {
	own := make([]EvolutionLevel, len(levels))
	for i, l := range levels {
		own[i] = EvolutionLevel{Cost: l.Cost, Animations: l.Animations}
		if l.Statistics != nil {
			own[i].Statistics = l.Statistics.Clone()
		}
	}
	return &EvolvingActor{Actor: a, levels: own}
}

// CurrentEvolutionLevel returns number of evolutions performed.
func (e *EvolvingActor) CurrentEvolutionLevel() int {
	return e.current
}

// LevelCount returns number of defined levels.
func (e *EvolvingActor) LevelCount() int {
	return len(e.levels)
}

// HasMaxLevel reports whether every level has been applied.
func (e *EvolvingActor) HasMaxLevel() bool {
	return e.current >= len(e.levels)
}

// CurrentEvolutionCost returns the price of the next evolution.
// Returns false at max level.
func (e *EvolvingActor) CurrentEvolutionCost() (int, bool) {
	if e.HasMaxLevel() {
		return 0, false
	}
	return e.levels[e.current].Cost, true
}

// Evolve applies the next level: base statistics, recalculation,
// animation overrides, CallbackEvolve. Returns false at max level.
// Gold is not handled here; see logic.Manager.Evolve.
func (e *EvolvingActor) Evolve() bool {
	if e.HasMaxLevel() {
		return false
	}

	level := e.levels[e.current]
	e.current++

	e.SetBaseStatistics(level.Statistics)
	for state, anim := range level.Animations {
		e.SetAnimation(state, anim)
	}

	slog.Debug("actor evolved",
		"objectID", e.ObjectID(),
		"name", e.Name(),
		"level", e.current)

	e.fire(CallbackEvolve)
	return true
}
