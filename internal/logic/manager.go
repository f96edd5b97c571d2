package logic

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/towerdefence/internal/model"
)

var (
	// ErrInsufficientGold is returned when the player cannot pay for a purchase.
	ErrInsufficientGold = errors.New("insufficient gold")
	// ErrUnknownTower is returned for tower names missing from the catalog.
	ErrUnknownTower = errors.New("unknown tower")
)

// WaveProgress reports whether all waves finished spawning.
type WaveProgress interface {
	Exhausted() bool
}

// TowerPlacer creates catalog objects on the scene.
type TowerPlacer interface {
	ClassProperties(name string) (model.ClassProperties, bool)
	CreateOnScene(name string, setup func(*model.Actor)) (model.Object, error)
}

// Manager owns GameState: gold, kills, evolution gating, tower purchase
// and the session outcome.
type Manager struct {
	state  GameState
	waves  WaveProgress
	towers TowerPlacer
}

// NewManager creates manager with starting gold and a fresh run id.
func NewManager(startGold int, waves WaveProgress, towers TowerPlacer) *Manager {
	return &Manager{
		state: GameState{
			RunID:      uuid.New(),
			PlayerGold: startGold,
		},
		waves:  waves,
		towers: towers,
	}
}

// State returns a copy of the game state.
func (m *Manager) State() GameState {
	return m.state
}

// OnObjectAddedToScene hooks kill bookkeeping into new actors.
// Enemies pay out gold when killed; losing the player's base ends the game.
func (m *Manager) OnObjectAddedToScene(obj model.Object) {
	living, ok := obj.(model.Living)
	if !ok {
		return
	}
	a := living.AsActor()

	switch {
	case a.Team() != model.PlayerTeam:
		m.state.EnemiesAlive++
		a.SetCallback(model.CallbackKill, m.onMonsterKilled)
	case a.Name() == model.BaseClassName:
		a.SetCallback(model.CallbackKill, m.onBaseDestroyed)
	}
}

func (m *Manager) onMonsterKilled(a *model.Actor) {
	m.state.MonstersKilled++
	m.state.PlayerGold += a.Properties().GoldGain
	m.state.EnemiesAlive--

	slog.Debug("monster killed",
		"objectID", a.ObjectID(),
		"name", a.Name(),
		"goldGain", a.Properties().GoldGain,
		"gold", m.state.PlayerGold)
}

func (m *Manager) onBaseDestroyed(a *model.Actor) {
	if m.state.Outcome != Running {
		return
	}
	m.state.Outcome = Lost

	slog.Info("base destroyed, game lost",
		"runID", m.state.RunID,
		"time", m.state.TimeElapsed,
		"killed", m.state.MonstersKilled)
}

// CanEvolve reports whether obj is evolvable, below max level, and the
// player can pay for the next level.
func (m *Manager) CanEvolve(obj model.Object) bool {
	e, ok := obj.(model.Evolver)
	if !ok || e.HasMaxLevel() {
		return false
	}
	cost, ok := e.CurrentEvolutionCost()
	return ok && cost <= m.state.PlayerGold
}

// Evolve charges the evolution cost and upgrades obj.
// Returns false without side effects when CanEvolve is false.
func (m *Manager) Evolve(obj model.Object) bool {
	if !m.CanEvolve(obj) {
		return false
	}
	e := obj.(model.Evolver)
	cost, _ := e.CurrentEvolutionCost()

	m.state.PlayerGold -= cost
	e.Evolve()

	slog.Debug("actor evolution bought",
		"objectID", e.ObjectID(),
		"level", e.CurrentEvolutionLevel(),
		"levels", e.LevelCount(),
		"cost", cost,
		"gold", m.state.PlayerGold)
	return true
}

// CanAfford reports whether the player can buy tower name.
func (m *Manager) CanAfford(name string) bool {
	props, ok := m.towers.ClassProperties(name)
	return ok && props.Cost <= m.state.PlayerGold
}

// BuyTower charges the tower cost and places it at position on the
// player's team. Nothing is charged when placement fails.
func (m *Manager) BuyTower(name string, position model.Vec) (model.Object, error) {
	props, ok := m.towers.ClassProperties(name)
	if !ok {
		return nil, fmt.Errorf("buying %q: %w", name, ErrUnknownTower)
	}
	if props.Cost > m.state.PlayerGold {
		return nil, fmt.Errorf("buying %q for %d with %d gold: %w",
			name, props.Cost, m.state.PlayerGold, ErrInsufficientGold)
	}

	obj, err := m.towers.CreateOnScene(name, func(a *model.Actor) {
		a.SetPosition(position)
		a.SetTeam(model.PlayerTeam)
	})
	if err != nil {
		return nil, fmt.Errorf("placing %q: %w", name, err)
	}

	m.state.PlayerGold -= props.Cost
	slog.Debug("tower bought",
		"name", name,
		"objectID", obj.ObjectID(),
		"cost", props.Cost,
		"gold", m.state.PlayerGold)
	return obj, nil
}

// Update advances session time and decides a win once every wave has
// spawned and no enemy is left.
func (m *Manager) Update(dt float64) {
	m.state.TimeElapsed += dt

	if m.state.Outcome != Running || m.waves == nil {
		return
	}
	if m.waves.Exhausted() && m.state.EnemiesAlive == 0 {
		m.state.Outcome = Won
		slog.Info("all waves cleared, game won",
			"runID", m.state.RunID,
			"time", m.state.TimeElapsed,
			"killed", m.state.MonstersKilled,
			"gold", m.state.PlayerGold)
	}
}

// Finished reports whether the outcome is decided.
func (m *Manager) Finished() bool {
	return m.state.Outcome != Running
}

// RunID identifies this session.
func (m *Manager) RunID() uuid.UUID {
	return m.state.RunID
}
