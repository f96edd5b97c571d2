package wave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/towerdefence/internal/game/controller"
	"github.com/udisondev/towerdefence/internal/model"
)

type spawnCall struct {
	name string
	path int
}

type recordingSpawner struct {
	calls []spawnCall
	fail  map[string]error
}

func (r *recordingSpawner) SpawnOnPath(name string, path int) error {
	if err := r.fail[name]; err != nil {
		return err
	}
	r.calls = append(r.calls, spawnCall{name, path})
	return nil
}

const singleWave = `
waves:
  - type: standard
    start_time: 0
    creation_interval: 0.5
    number_of_objects: 3
    objects:
      - {name: Orc, path: 0}
`

func TestManager_CatchUpSchedule(t *testing.T) {
	sp := &recordingSpawner{}
	m := NewManager(sp)
	require.NoError(t, m.LoadDocument([]byte(singleWave)))

	m.Update(0.4)
	assert.Len(t, sp.calls, 1)

	m.Update(0.5)
	assert.Len(t, sp.calls, 2)

	m.Update(0.3)
	assert.Len(t, sp.calls, 3)
	assert.True(t, m.Exhausted())

	m.Update(5)
	m.Update(5)
	assert.Len(t, sp.calls, 3, "exhausted wave creates nothing")
	assert.InDelta(t, 11.2, m.TimeElapsed(), 1e-9)
}

func TestManager_CoarseTickCatchesUp(t *testing.T) {
	sp := &recordingSpawner{}
	m := NewManager(sp)
	require.NoError(t, m.LoadDocument([]byte(singleWave)))

	m.Update(10)

	assert.Len(t, sp.calls, 3)
}

func TestManager_UnknownTypeLoadsNothing(t *testing.T) {
	doc := `
waves:
  - type: standard
    start_time: 0
    creation_interval: 1
    number_of_objects: 1
    objects: [{name: Orc, path: 0}]
  - type: boss
    start_time: 5
    creation_interval: 1
    number_of_objects: 1
    objects: [{name: Dragon, path: 0}]
`
	sp := &recordingSpawner{}
	m := NewManager(sp)

	err := m.LoadDocument([]byte(doc))

	require.ErrorIs(t, err, ErrUnknownWaveType)
	assert.Empty(t, m.Waves())
	m.Update(10)
	assert.Empty(t, sp.calls)
}

func TestParse_SortsByStartTimeStable(t *testing.T) {
	doc := `
waves:
  - {type: standard, start_time: 5, creation_interval: 1, number_of_objects: 1, objects: [{name: C, path: 0}]}
  - {type: standard, start_time: 0, creation_interval: 1, number_of_objects: 1, objects: [{name: A, path: 0}]}
  - {type: standard, start_time: 5, creation_interval: 1, number_of_objects: 1, objects: [{name: D, path: 1}]}
  - {type: standard, start_time: 1, creation_interval: 1, number_of_objects: 1, objects: [{name: B, path: 0}]}
`
	waves, err := Parse([]byte(doc))
	require.NoError(t, err)

	var names []string
	for _, w := range waves {
		names = append(names, w.Templates()[0].Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestParse_JSON(t *testing.T) {
	doc := `{
  "waves": [
    {
      "type": "standard",
      "start_time": 2,
      "creation_interval": 0.5,
      "number_of_objects": 4,
      "objects": [{"name": "Orc", "path": 1}]
    }
  ]
}`
	waves, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, waves, 1)
	assert.InDelta(t, 2.0, waves[0].StartTime(), 1e-9)
	assert.Equal(t, []ObjectTemplate{{Name: "Orc", Path: 1}}, waves[0].Templates())
}

func TestParse_EmptyTemplates(t *testing.T) {
	doc := `waves: [{type: standard, start_time: 0, creation_interval: 1, number_of_objects: 2}]`

	_, err := Parse([]byte(doc))

	assert.ErrorIs(t, err, ErrInvalidWave)
}

func TestStandardWave_ShouldRun(t *testing.T) {
	w := NewStandardWave([]ObjectTemplate{{Name: "Orc"}}, 2, 1, 2)

	assert.False(t, w.ShouldRun(1.9))
	assert.True(t, w.ShouldRun(2))

	w.ObjectsToCreate(100)
	assert.False(t, w.ShouldRun(100))
}

func TestStandardWave_CyclesTemplates(t *testing.T) {
	w := NewStandardWave([]ObjectTemplate{{Name: "Orc", Path: 0}, {Name: "Goblin", Path: 1}}, 0, 1, 5)

	got := w.ObjectsToCreate(100)

	require.Len(t, got, 5)
	assert.Equal(t, "Orc", got[0].Name)
	assert.Equal(t, "Goblin", got[1].Name)
	assert.Equal(t, "Orc", got[4].Name)
	assert.Equal(t, 5, w.Created())
}

func TestManager_SpawnErrorIsSkipped(t *testing.T) {
	sp := &recordingSpawner{fail: map[string]error{"Ghost": assert.AnError}}
	m := NewManager(sp)
	m.SetWaves([]Wave{
		NewStandardWave([]ObjectTemplate{{Name: "Ghost"}, {Name: "Orc"}}, 0, 0.1, 2),
	})

	m.Update(1)

	assert.Equal(t, []spawnCall{{"Orc", 0}}, sp.calls)
	assert.True(t, m.Exhausted())
}

func TestManager_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.yaml")
	require.NoError(t, os.WriteFile(path, []byte(singleWave), 0o600))

	m := NewManager(&recordingSpawner{})
	require.NoError(t, m.Load(path))
	assert.Len(t, m.Waves(), 1)

	err := m.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Empty(t, m.Waves())
}

func TestPlaceOnPath(t *testing.T) {
	s := model.NewStatistics()
	s.SetValue(model.StatSpeed, 10)
	a := model.NewActor(model.ClassProperties{Name: "Orc"}, s, 10, 10)
	pc := controller.NewPathController()
	a.AddController(pc)

	ok := PlaceOnPath(a, []model.Vec{model.V(5, 5), model.V(5, 50)})

	require.True(t, ok)
	assert.Equal(t, model.V(5, 5), a.Position())
	assert.Equal(t, 1, pc.CurrentPoint())
	assert.True(t, pc.NeedUpdate())

	tower := model.NewActor(model.ClassProperties{Name: "ArrowTower"}, s, 10, 10)
	assert.False(t, PlaceOnPath(tower, []model.Vec{model.V(0, 0)}))
}
