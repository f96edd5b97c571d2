package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/towerdefence/internal/model"
)

// ErrUnknownObject is returned when no constructor is registered for a name.
var ErrUnknownObject = errors.New("unknown object type")

// Constructor builds a fresh, fully configured object.
// Every call must return an instance with its own containers.
type Constructor = func() model.Living

type factoryEntry struct {
	props model.ClassProperties
	build Constructor
}

// Factory is the explicit name → constructor registry of creature types.
// Filled once at startup (see data.Catalog.RegisterAll).
type Factory struct {
	entries map[string]factoryEntry
}

// NewFactory creates empty registry.
func NewFactory() *Factory {
	return &Factory{entries: make(map[string]factoryEntry)}
}

// Register adds or replaces constructor for name.
func (f *Factory) Register(name string, props model.ClassProperties, build Constructor) {
	f.entries[name] = factoryEntry{props: props, build: build}
}

// Create builds a new object of type name.
func (f *Factory) Create(name string) (model.Living, error) {
	e, ok := f.entries[name]
	if !ok {
		return nil, fmt.Errorf("creating %q: %w", name, ErrUnknownObject)
	}
	return e.build(), nil
}

// ClassProperties returns properties of type name.
func (f *Factory) ClassProperties(name string) (model.ClassProperties, bool) {
	e, ok := f.entries[name]
	return e.props, ok
}

// Names returns registered type names, sorted.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.entries))
	for name := range f.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
