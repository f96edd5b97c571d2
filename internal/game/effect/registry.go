package effect

import (
	"errors"
	"fmt"

	"github.com/udisondev/towerdefence/internal/model"
)

var (
	// ErrUnknownEffect is returned for effect names missing from the registry.
	ErrUnknownEffect = errors.New("unknown effect")
	// ErrMissingParam is returned when an effect descriptor lacks a required parameter.
	ErrMissingParam = errors.New("missing effect parameter")
)

// Factory builds an effect on target from validated parameters.
type Factory func(target *model.Actor, params map[string]float64) model.LogicalEffect

type registration struct {
	required []string
	factory  Factory
}

// effectRegistry maps effect name → factory.
// Populated by init(); read-only afterwards.
var effectRegistry = map[string]registration{}

// Register registers an effect factory with its required parameters.
func Register(name string, required []string, factory Factory) {
	effectRegistry[name] = registration{required: required, factory: factory}
}

// Registered reports whether name has a factory.
func Registered(name string) bool {
	_, ok := effectRegistry[name]
	return ok
}

func init() {
	Register("HitEffect", []string{"damage"}, func(t *model.Actor, p map[string]float64) model.LogicalEffect {
		return NewHitEffect(t, p["damage"])
	})
	Register("SlowEffect", []string{"time", "percent"}, func(t *model.Actor, p map[string]float64) model.LogicalEffect {
		return NewSlowEffect(t, p["time"], p["percent"])
	})
	Register("PoisonEffect", []string{"time", "damage", "repeat_time"}, func(t *model.Actor, p map[string]float64) model.LogicalEffect {
		return NewPoisonEffect(t, p["time"], p["damage"], p["repeat_time"])
	})
}

// Validate checks that every descriptor names a registered effect and
// carries its required parameters.
func Validate(specs []model.EffectSpec) error {
	for _, spec := range specs {
		reg, ok := effectRegistry[spec.Name]
		if !ok {
			return fmt.Errorf("effect %q: %w", spec.Name, ErrUnknownEffect)
		}
		for _, param := range reg.required {
			if _, ok := spec.Params[param]; !ok {
				return fmt.Errorf("effect %q param %q: %w", spec.Name, param, ErrMissingParam)
			}
		}
	}
	return nil
}

// Create builds one effect on target.
func Create(target *model.Actor, spec model.EffectSpec) (model.LogicalEffect, error) {
	if err := Validate([]model.EffectSpec{spec}); err != nil {
		return nil, err
	}
	return effectRegistry[spec.Name].factory(target, spec.Params), nil
}

// Apply creates every effect in specs and attaches it to target.
// Stops at the first invalid descriptor; earlier effects stay attached.
func Apply(target *model.Actor, specs []model.EffectSpec) error {
	for _, spec := range specs {
		e, err := Create(target, spec)
		if err != nil {
			return fmt.Errorf("applying effects to %d: %w", target.ObjectID(), err)
		}
		target.AddLogicalEffect(e)
	}
	return nil
}
