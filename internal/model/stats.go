package model

import "maps"

// StatType identifies one statistic of an actor.
// Numeric statistics come first and index the value array.
type StatType int8

const (
	StatMaxHealth StatType = iota
	StatSpeed
	StatAttackDamage
	StatAttackRange
	StatBulletSpeed

	numericStatCount

	StatBulletImage
	StatHitEffects
)

var statNames = map[StatType]string{
	StatMaxHealth:    "max_health",
	StatSpeed:        "speed",
	StatAttackDamage: "attack_damage",
	StatAttackRange:  "attack_range",
	StatBulletSpeed:  "bullet_speed",
	StatBulletImage:  "bullet_image",
	StatHitEffects:   "hit_effects",
}

func (s StatType) String() string {
	if n, ok := statNames[s]; ok {
		return n
	}
	return "unknown"
}

// IsNumeric reports whether s can be modified by a StatModifier.
func (s StatType) IsNumeric() bool {
	return s >= 0 && s < numericStatCount
}

// ParseStatType converts a statistic name used in data files.
func ParseStatType(name string) (StatType, bool) {
	for t, n := range statNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// StatModifier — additive or multiplicative adjustment of one statistic.
// Identity is the pointer: removing a modifier removes exactly the
// installed instance.
type StatModifier struct {
	Stat     StatType
	Value    float64
	Multiply bool
}

// NewAddModifier creates additive modifier (+value).
func NewAddModifier(stat StatType, value float64) *StatModifier {
	return &StatModifier{Stat: stat, Value: value}
}

// NewMulModifier creates multiplicative modifier (×value).
func NewMulModifier(stat StatType, value float64) *StatModifier {
	return &StatModifier{Stat: stat, Value: value, Multiply: true}
}

// EffectSpec describes a logical effect carried by an attack.
// Resolved by name through the effect registry.
type EffectSpec struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params"`
}

// Statistics — набор характеристик актёра.
// Derived snapshots are read-only: setters silently ignore writes.
type Statistics struct {
	values      [numericStatCount]float64
	bulletImage string
	hitEffects  []EffectSpec
	readOnly    bool
}

// NewStatistics creates empty writable statistics.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Value returns numeric statistic. Non-numeric types return 0.
func (s *Statistics) Value(t StatType) float64 {
	if !t.IsNumeric() {
		return 0
	}
	return s.values[t]
}

// SetValue sets numeric statistic. No-op on read-only statistics.
func (s *Statistics) SetValue(t StatType, v float64) {
	if s.readOnly || !t.IsNumeric() {
		return
	}
	s.values[t] = v
}

func (s *Statistics) MaxHealth() float64    { return s.values[StatMaxHealth] }
func (s *Statistics) Speed() float64        { return s.values[StatSpeed] }
func (s *Statistics) AttackDamage() float64 { return s.values[StatAttackDamage] }
func (s *Statistics) AttackRange() float64  { return s.values[StatAttackRange] }
func (s *Statistics) BulletSpeed() float64  { return s.values[StatBulletSpeed] }
func (s *Statistics) BulletImage() string   { return s.bulletImage }

// HitEffects returns a copy of the effect descriptors.
func (s *Statistics) HitEffects() []EffectSpec {
	return cloneEffectSpecs(s.hitEffects)
}

// SetBulletImage sets bullet sprite name. No-op on read-only statistics.
func (s *Statistics) SetBulletImage(name string) {
	if s.readOnly {
		return
	}
	s.bulletImage = name
}

// SetHitEffects replaces hit effects. No-op on read-only statistics.
func (s *Statistics) SetHitEffects(specs []EffectSpec) {
	if s.readOnly {
		return
	}
	s.hitEffects = cloneEffectSpecs(specs)
}

// ReadOnly reports whether setters are disabled.
func (s *Statistics) ReadOnly() bool {
	return s.readOnly
}

// Clone returns a writable deep copy.
func (s *Statistics) Clone() *Statistics {
	c := &Statistics{
		values:      s.values,
		bulletImage: s.bulletImage,
		hitEffects:  cloneEffectSpecs(s.hitEffects),
	}
	return c
}

// GetModifiedStatistics returns a read-only snapshot with modifiers applied.
// Per statistic: final = (base + Σadd) × Πmul. Statistics without
// modifiers keep the base value. The receiver is never mutated.
func (s *Statistics) GetModifiedStatistics(modifiers []*StatModifier) *Statistics {
	out := s.Clone()

	var (
		sums     [numericStatCount]float64
		products [numericStatCount]float64
		touched  [numericStatCount]bool
	)
	for i := range products {
		products[i] = 1
	}

	for _, m := range modifiers {
		if m == nil || !m.Stat.IsNumeric() {
			continue
		}
		touched[m.Stat] = true
		if m.Multiply {
			products[m.Stat] *= m.Value
		} else {
			sums[m.Stat] += m.Value
		}
	}

	for i := range out.values {
		if !touched[i] {
			continue
		}
		out.values[i] = (out.values[i] + sums[i]) * products[i]
	}

	out.readOnly = true
	return out
}

func cloneEffectSpecs(specs []EffectSpec) []EffectSpec {
	if specs == nil {
		return nil
	}
	out := make([]EffectSpec, len(specs))
	for i, spec := range specs {
		out[i] = EffectSpec{Name: spec.Name, Params: maps.Clone(spec.Params)}
	}
	return out
}

// NumericStatTypes lists every modifiable statistic in index order.
func NumericStatTypes() []StatType {
	out := make([]StatType, 0, numericStatCount)
	for t := StatType(0); t < numericStatCount; t++ {
		out = append(out, t)
	}
	return out
}
