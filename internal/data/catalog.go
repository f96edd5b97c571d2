package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/towerdefence/internal/anim"
	"github.com/udisondev/towerdefence/internal/game/effect"
	"github.com/udisondev/towerdefence/internal/model"
)

var (
	// ErrUnknownControllerKind is returned for controller kinds without a constructor.
	ErrUnknownControllerKind = errors.New("unknown controller kind")
	// ErrUnknownAIKind is returned for AI kinds without a constructor.
	ErrUnknownAIKind = errors.New("unknown AI kind")
	// ErrInvalidCreature is returned for creature definitions that cannot be built.
	ErrInvalidCreature = errors.New("invalid creature definition")
)

// StatisticsSpec is the data-file form of model.Statistics.
type StatisticsSpec struct {
	MaxHealth    float64            `yaml:"max_health"`
	Speed        float64            `yaml:"speed"`
	AttackDamage float64            `yaml:"attack_damage"`
	AttackRange  float64            `yaml:"attack_range"`
	BulletSpeed  float64            `yaml:"bullet_speed"`
	BulletImage  string             `yaml:"bullet_image"`
	HitEffects   []model.EffectSpec `yaml:"hit_effects"`
}

// Build returns new writable statistics.
func (s StatisticsSpec) Build() *model.Statistics {
	st := model.NewStatistics()
	st.SetValue(model.StatMaxHealth, s.MaxHealth)
	st.SetValue(model.StatSpeed, s.Speed)
	st.SetValue(model.StatAttackDamage, s.AttackDamage)
	st.SetValue(model.StatAttackRange, s.AttackRange)
	st.SetValue(model.StatBulletSpeed, s.BulletSpeed)
	st.SetBulletImage(s.BulletImage)
	st.SetHitEffects(s.HitEffects)
	return st
}

// Size is the collision rectangle of a creature.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EvolutionSpec is one upgrade level.
type EvolutionSpec struct {
	Cost       int                  `yaml:"cost"`
	Statistics StatisticsSpec       `yaml:"statistics"`
	Animations map[string]anim.Spec `yaml:"animations"`
}

// CreatureSpec defines one actor type.
type CreatureSpec struct {
	Name        string               `yaml:"name"`
	GoldGain    int                  `yaml:"gold_gain"`
	Cost        int                  `yaml:"cost"`
	Team        string               `yaml:"team"`
	Size        Size                 `yaml:"size"`
	Statistics  StatisticsSpec       `yaml:"statistics"`
	Controllers []string             `yaml:"controllers"`
	AI          string               `yaml:"ai"`
	Animations  map[string]anim.Spec `yaml:"animations"`
	Evolution   []EvolutionSpec      `yaml:"evolution"`
}

// Properties returns class properties of the creature.
func (c *CreatureSpec) Properties() model.ClassProperties {
	return model.ClassProperties{Name: c.Name, GoldGain: c.GoldGain, Cost: c.Cost}
}

// Catalog — реестр типов существ, загруженный из YAML.
type Catalog struct {
	Creatures []CreatureSpec `yaml:"creatures"`
}

// Registrar accepts one constructor per creature type (scene.Factory).
type Registrar interface {
	Register(name string, props model.ClassProperties, build func() model.Living)
}

// LoadCatalog reads and validates catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}

	slog.Info("creature catalog loaded", "path", path, "count", len(c.Creatures))
	return c, nil
}

// ParseCatalog decodes and validates catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every creature: unique names, known controller and AI
// kinds, registered effects, known animation states.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Creatures))
	for i := range c.Creatures {
		spec := &c.Creatures[i]
		if spec.Name == "" {
			return fmt.Errorf("creature %d has no name: %w", i, ErrInvalidCreature)
		}
		if seen[spec.Name] {
			return fmt.Errorf("creature %q defined twice: %w", spec.Name, ErrInvalidCreature)
		}
		seen[spec.Name] = true

		if err := spec.validate(); err != nil {
			return fmt.Errorf("creature %q: %w", spec.Name, err)
		}
	}
	return nil
}

func (c *CreatureSpec) validate() error {
	team, ok := parseTeam(c.Team)
	if !ok {
		return fmt.Errorf("team %q: %w", c.Team, ErrInvalidCreature)
	}

	for _, kind := range c.Controllers {
		if _, ok := controllerKinds[kind]; !ok {
			return fmt.Errorf("controller %q: %w", kind, ErrUnknownControllerKind)
		}
		if rangedKinds[kind] && c.Statistics.BulletSpeed <= 0 {
			return fmt.Errorf("%s needs positive bullet_speed: %w", kind, ErrInvalidCreature)
		}
	}

	if c.AI != "" {
		if _, ok := aiKinds[c.AI]; !ok {
			return fmt.Errorf("ai %q: %w", c.AI, ErrUnknownAIKind)
		}
	}

	if err := effect.Validate(c.Statistics.HitEffects); err != nil {
		return err
	}
	if err := validateAnimations(c.Animations); err != nil {
		return err
	}

	for i, lvl := range c.Evolution {
		if lvl.Cost < 0 {
			return fmt.Errorf("evolution %d has negative cost: %w", i, ErrInvalidCreature)
		}
		if err := effect.Validate(lvl.Statistics.HitEffects); err != nil {
			return fmt.Errorf("evolution %d: %w", i, err)
		}
		if err := validateAnimations(lvl.Animations); err != nil {
			return fmt.Errorf("evolution %d: %w", i, err)
		}
	}

	// Kill callbacks fire from DeathController only: without it an enemy
	// is never counted dead and a base is never destroyed.
	if (team == model.EnemyTeam || c.Name == model.BaseClassName) &&
		!slices.Contains(c.Controllers, deathControllerKind) {
		return fmt.Errorf("%s team creature needs %s: %w", teamName(team), deathControllerKind, ErrInvalidCreature)
	}
	return nil
}

func validateAnimations(anims map[string]anim.Spec) error {
	for state := range anims {
		if _, ok := model.ParseState(state); !ok {
			return fmt.Errorf("animation state %q: %w", state, ErrInvalidCreature)
		}
	}
	return nil
}

func teamName(team model.Team) string {
	if team == model.PlayerTeam {
		return "player"
	}
	return "enemy"
}

func parseTeam(team string) (model.Team, bool) {
	switch team {
	case "", "enemy":
		return model.EnemyTeam, true
	case "player":
		return model.PlayerTeam, true
	}
	return 0, false
}

// RegisterAll registers one constructor per creature. Animations of the
// built actors are driven by clock.
func (c *Catalog) RegisterAll(r Registrar, clock anim.Clock) {
	for i := range c.Creatures {
		spec := c.Creatures[i]
		r.Register(spec.Name, spec.Properties(), func() model.Living {
			return spec.Build(clock)
		})
	}
}

// Build creates a new actor of this type. Evolving types return
// *model.EvolvingActor.
func (c *CreatureSpec) Build(clock anim.Clock) model.Living {
	a := model.NewActor(c.Properties(), c.Statistics.Build(), c.Size.Width, c.Size.Height)

	team, _ := parseTeam(c.Team)
	a.SetTeam(team)

	for _, kind := range c.Controllers {
		a.AddController(controllerKinds[kind]())
	}
	if c.AI != "" {
		a.SetAI(aiKinds[c.AI]())
	}
	for state, animation := range buildAnimations(clock, c.Animations) {
		a.SetAnimation(state, animation)
	}

	if len(c.Evolution) == 0 {
		return a
	}

	levels := make([]model.EvolutionLevel, len(c.Evolution))
	for i, lvl := range c.Evolution {
		levels[i] = model.EvolutionLevel{
			Statistics: lvl.Statistics.Build(),
			Cost:       lvl.Cost,
			Animations: buildAnimations(clock, lvl.Animations),
		}
	}
	return model.NewEvolvingActor(a, levels)
}

func buildAnimations(clock anim.Clock, specs map[string]anim.Spec) map[model.ActorState]model.Animation {
	if len(specs) == 0 {
		return nil
	}
	out := make(map[model.ActorState]model.Animation, len(specs))
	for name, spec := range specs {
		state, ok := model.ParseState(name)
		if !ok {
			continue
		}
		out[state] = anim.NewClip(clock, spec)
	}
	return out
}
