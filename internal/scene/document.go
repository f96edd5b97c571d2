package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/towerdefence/internal/anim"
	"github.com/udisondev/towerdefence/internal/model"
)

// ErrMissingLevelProperty is returned when a level document lacks a required property.
var ErrMissingLevelProperty = errors.New("missing level property")

// StartProperties are the initial economy values of a level.
type StartProperties struct {
	PlayerGold *int `yaml:"player_gold"`
}

// BasePlacement positions the player's base.
type BasePlacement struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Document is the level file layout.
//
//	wave_file: waves.yaml
//	start_properties: {player_gold: 100}
//	paths:
//	  - [[0, 0], [100, 0], [100, 80]]
//	base: {name: Base, x: 100, y: 80}
type Document struct {
	WaveFile        *string          `yaml:"wave_file"`
	StartProperties *StartProperties `yaml:"start_properties"`
	Paths           [][][2]float64   `yaml:"paths"`
	Base            *BasePlacement   `yaml:"base"`
}

// ParseDocument decodes and validates a level document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing level document: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	switch {
	case d.WaveFile == nil || *d.WaveFile == "":
		return fmt.Errorf("wave_file: %w", ErrMissingLevelProperty)
	case d.StartProperties == nil:
		return fmt.Errorf("start_properties: %w", ErrMissingLevelProperty)
	case d.StartProperties.PlayerGold == nil:
		return fmt.Errorf("start_properties.player_gold: %w", ErrMissingLevelProperty)
	case len(d.Paths) == 0:
		return fmt.Errorf("paths: %w", ErrMissingLevelProperty)
	}
	for i, p := range d.Paths {
		if len(p) == 0 {
			return fmt.Errorf("paths[%d] is empty: %w", i, ErrMissingLevelProperty)
		}
	}
	if d.Base != nil && d.Base.Name == "" {
		return fmt.Errorf("base.name: %w", ErrMissingLevelProperty)
	}
	return nil
}

// VecPaths converts document paths to vectors.
func (d *Document) VecPaths() [][]model.Vec {
	out := make([][]model.Vec, len(d.Paths))
	for i, p := range d.Paths {
		out[i] = make([]model.Vec, len(p))
		for j, pt := range p {
			out[i][j] = model.V(pt[0], pt[1])
		}
	}
	return out
}

// Load reads the level document at path, its wave file (relative to the
// level document), and builds a ready Level. The base, if any, joins the
// scene on the first frame.
func Load(path string, clock *anim.ManualClock, factory *Factory) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}

	level := NewLevel(Config{
		Clock:     clock,
		Factory:   factory,
		Paths:     doc.VecPaths(),
		StartGold: *doc.StartProperties.PlayerGold,
	})

	waveFile := *doc.WaveFile
	if !filepath.IsAbs(waveFile) {
		waveFile = filepath.Join(filepath.Dir(path), waveFile)
	}
	if err := level.Waves().Load(waveFile); err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}
	if err := level.validateWaves(); err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}

	if doc.Base != nil {
		_, err := level.CreateOnScene(doc.Base.Name, func(a *model.Actor) {
			a.SetPosition(model.V(doc.Base.X, doc.Base.Y))
			a.SetTeam(model.PlayerTeam)
		})
		if err != nil {
			return nil, fmt.Errorf("placing base: %w", err)
		}
	}

	slog.Info("level loaded",
		"path", path,
		"paths", len(doc.Paths),
		"waves", len(level.Waves().Waves()),
		"gold", *doc.StartProperties.PlayerGold,
		"runID", level.Logic().RunID())
	return level, nil
}

// validateWaves checks wave path indices against the level paths.
// Unknown creature names are only warned about; they fail at spawn time.
func (l *Level) validateWaves() error {
	for i, w := range l.waves.Waves() {
		for _, tmpl := range w.Templates() {
			if _, ok := l.Path(tmpl.Path); !ok {
				return fmt.Errorf("wave %d object %q path %d: %w", i, tmpl.Name, tmpl.Path, ErrUnknownPath)
			}
			if _, ok := l.factory.ClassProperties(tmpl.Name); !ok {
				slog.Warn("wave references unknown creature",
					"wave", i,
					"name", tmpl.Name)
			}
		}
	}
	return nil
}

// LoadWaves replaces waves from document bytes and validates them against paths.
func (l *Level) LoadWaves(data []byte) error {
	if err := l.waves.LoadDocument(data); err != nil {
		return err
	}
	if err := l.validateWaves(); err != nil {
		l.waves.SetWaves(nil)
		return err
	}
	return nil
}
