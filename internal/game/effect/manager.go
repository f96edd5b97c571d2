package effect

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/model"
)

// ActorSource lists actors currently in the world.
type ActorSource interface {
	LivingActors() []*model.Actor
}

// Manager ticks logical effects of every actor once per frame.
type Manager struct {
	source ActorSource
}

// NewManager creates manager reading actors from source.
func NewManager(source ActorSource) *Manager {
	return &Manager{source: source}
}

// Update performs due effects and detaches finished ones.
// Iterates a snapshot so effects added during the pass wait for the next frame.
func (m *Manager) Update(dt float64) {
	for _, a := range m.source.LivingActors() {
		for _, e := range a.LogicalEffects() {
			if e.NeedToPerform(dt) {
				e.Perform()
			}
			if e.IsFinished() {
				e.OnRemove()
				a.RemoveLogicalEffect(e)

				slog.Debug("logical effect expired",
					"target", a.ObjectID(),
					"effect", e.Name())
			}
		}
	}
}
