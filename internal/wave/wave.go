package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWaveType is returned when a wave declares an unsupported type.
	ErrUnknownWaveType = errors.New("unknown wave type")
	// ErrInvalidWave is returned for waves that can never produce objects correctly.
	ErrInvalidWave = errors.New("invalid wave")
)

// ObjectTemplate names a creature and the path it walks.
type ObjectTemplate struct {
	Name string `yaml:"name"`
	Path int    `yaml:"path"`
}

// Definition is one entry of a wave document.
type Definition struct {
	Type             string           `yaml:"type"`
	StartTime        float64          `yaml:"start_time"`
	CreationInterval float64          `yaml:"creation_interval"`
	NumberOfObjects  int              `yaml:"number_of_objects"`
	Objects          []ObjectTemplate `yaml:"objects"`
}

// Wave produces object templates on a schedule.
type Wave interface {
	// ShouldRun reports whether the wave has started and still has objects to create.
	ShouldRun(timeElapsed float64) bool
	// ObjectsToCreate returns every template due by timeElapsed.
	ObjectsToCreate(timeElapsed float64) []ObjectTemplate
	// Exhausted reports whether all objects were created.
	Exhausted() bool
	// Templates lists templates the wave cycles through.
	Templates() []ObjectTemplate
	StartTime() float64
}

// waveTypes maps document type → constructor.
var waveTypes = map[string]func(Definition) (Wave, error){
	"standard": newStandardWaveFromDefinition,
}

// New builds a wave from its definition.
func New(def Definition) (Wave, error) {
	build, ok := waveTypes[def.Type]
	if !ok {
		return nil, fmt.Errorf("wave type %q: %w", def.Type, ErrUnknownWaveType)
	}
	return build(def)
}

// StandardWave emits numberOfObjects templates, one every creationInterval
// starting at startTime. Templates cycle through the objects list.
type StandardWave struct {
	objects          []ObjectTemplate
	startTime        float64
	creationInterval float64
	numberOfObjects  int
	created          int
}

// NewStandardWave creates standard wave.
func NewStandardWave(objects []ObjectTemplate, startTime, creationInterval float64, numberOfObjects int) *StandardWave {
	return &StandardWave{
		objects:          append([]ObjectTemplate(nil), objects...),
		startTime:        startTime,
		creationInterval: creationInterval,
		numberOfObjects:  numberOfObjects,
	}
}

func newStandardWaveFromDefinition(def Definition) (Wave, error) {
	if def.NumberOfObjects > 0 && len(def.Objects) == 0 {
		return nil, fmt.Errorf("wave at %.2fs has %d objects but no templates: %w",
			def.StartTime, def.NumberOfObjects, ErrInvalidWave)
	}
	if def.CreationInterval < 0 || def.NumberOfObjects < 0 {
		return nil, fmt.Errorf("wave at %.2fs has negative interval or count: %w",
			def.StartTime, ErrInvalidWave)
	}
	return NewStandardWave(def.Objects, def.StartTime, def.CreationInterval, def.NumberOfObjects), nil
}

func (w *StandardWave) ShouldRun(timeElapsed float64) bool {
	return w.startTime <= timeElapsed && w.created < w.numberOfObjects
}

// ObjectsToCreate catches up: when called rarely it returns every object
// whose creation time has passed, so coarse ticking never skips spawns.
func (w *StandardWave) ObjectsToCreate(timeElapsed float64) []ObjectTemplate {
	var out []ObjectTemplate
	for w.created < w.numberOfObjects && w.dueAt(w.created) < timeElapsed {
		out = append(out, w.objects[w.created%len(w.objects)])
		w.created++
	}
	return out
}

func (w *StandardWave) dueAt(i int) float64 {
	return float64(i)*w.creationInterval + w.startTime
}

func (w *StandardWave) Exhausted() bool {
	return w.created >= w.numberOfObjects
}

func (w *StandardWave) Templates() []ObjectTemplate {
	return append([]ObjectTemplate(nil), w.objects...)
}

func (w *StandardWave) StartTime() float64 {
	return w.startTime
}

// Created returns number of objects emitted so far.
func (w *StandardWave) Created() int {
	return w.created
}
