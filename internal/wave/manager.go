package wave

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/towerdefence/internal/model"
)

// Document is the wave file layout. JSON documents parse too.
type Document struct {
	Waves []Definition `yaml:"waves"`
}

// Spawner creates a named creature on a path. Implemented by the scene.
type Spawner interface {
	SpawnOnPath(name string, pathIndex int) error
}

// Manager owns the wave clock and spawns due objects every frame.
type Manager struct {
	spawner Spawner
	waves   []Wave
	elapsed float64
}

// NewManager creates manager without waves.
func NewManager(spawner Spawner) *Manager {
	return &Manager{spawner: spawner}
}

// Load reads a wave document from file.
// On error no waves are kept.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		m.waves = nil
		return fmt.Errorf("reading wave file %s: %w", path, err)
	}
	if err := m.LoadDocument(data); err != nil {
		return fmt.Errorf("loading wave file %s: %w", path, err)
	}
	return nil
}

// LoadDocument parses document and replaces the wave list.
// Waves are sorted by start time; ties keep document order.
func (m *Manager) LoadDocument(data []byte) error {
	m.waves = nil
	m.elapsed = 0

	waves, err := Parse(data)
	if err != nil {
		return err
	}
	m.waves = waves

	slog.Info("waves loaded", "count", len(waves))
	return nil
}

// Parse decodes wave document into waves sorted by start time.
func Parse(data []byte) ([]Wave, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing wave document: %w", err)
	}

	defs := doc.Waves
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].StartTime < defs[j].StartTime
	})

	waves := make([]Wave, 0, len(defs))
	for i, def := range defs {
		w, err := New(def)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		waves = append(waves, w)
	}
	return waves, nil
}

// SetWaves replaces waves directly (tests, generated levels).
func (m *Manager) SetWaves(waves []Wave) {
	m.waves = waves
	m.elapsed = 0
}

// Waves returns loaded waves in start order.
func (m *Manager) Waves() []Wave {
	return m.waves
}

// TimeElapsed returns the wave clock.
func (m *Manager) TimeElapsed() float64 {
	return m.elapsed
}

// Exhausted reports whether every wave created all of its objects.
func (m *Manager) Exhausted() bool {
	for _, w := range m.waves {
		if !w.Exhausted() {
			return false
		}
	}
	return true
}

// Update advances the clock and spawns every due object.
// Spawn failures are logged and skipped.
func (m *Manager) Update(dt float64) {
	m.elapsed += dt

	for _, w := range m.waves {
		if !w.ShouldRun(m.elapsed) {
			continue
		}
		for _, tmpl := range w.ObjectsToCreate(m.elapsed) {
			if err := m.spawner.SpawnOnPath(tmpl.Name, tmpl.Path); err != nil {
				slog.Warn("wave spawn skipped",
					"name", tmpl.Name,
					"path", tmpl.Path,
					"time", m.elapsed,
					"error", err)
			}
		}
	}
}

// PlaceOnPath puts a freshly created actor at the start of path and
// points its path follower at the second point.
// Returns false if the actor cannot follow paths or path is empty.
func PlaceOnPath(a *model.Actor, path []model.Vec) bool {
	follower, ok := model.FindController[model.PathFollower](a)
	if !ok || len(path) == 0 {
		return false
	}
	a.SetPosition(path[0])
	follower.SetPath(path)
	follower.SetCurrentPoint(1)
	return true
}
