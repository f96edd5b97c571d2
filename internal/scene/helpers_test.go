package scene

import (
	"github.com/udisondev/towerdefence/internal/ai"
	"github.com/udisondev/towerdefence/internal/game/controller"
	"github.com/udisondev/towerdefence/internal/model"
)

type unit struct {
	name        string
	team        model.Team
	hp          float64
	speed       float64
	attackRange float64
	damage      float64
	goldGain    int
	cost        int
	walks       bool
	attacks     bool
}

func (u unit) build() *model.Actor {
	s := model.NewStatistics()
	s.SetValue(model.StatMaxHealth, u.hp)
	s.SetValue(model.StatSpeed, u.speed)
	s.SetValue(model.StatAttackRange, u.attackRange)
	if u.damage > 0 {
		s.SetHitEffects([]model.EffectSpec{{Name: "HitEffect", Params: map[string]float64{"damage": u.damage}}})
	}

	a := model.NewActor(u.props(), s, 16, 16)
	a.SetTeam(u.team)
	a.AddController(controller.NewDeathController())
	if u.attacks {
		a.AddController(controller.NewAttackController())
		a.SetAI(ai.NewStandardAI())
	}
	if u.walks {
		a.AddController(controller.NewPathController())
	}
	return a
}

func (u unit) props() model.ClassProperties {
	return model.ClassProperties{Name: u.name, GoldGain: u.goldGain, Cost: u.cost}
}

func (u unit) register(f *Factory) {
	f.Register(u.name, u.props(), func() model.Living { return u.build() })
}

var (
	orc = unit{name: "Orc", hp: 5, speed: 10, goldGain: 7, walks: true}

	brute = unit{name: "Brute", hp: 100, attackRange: 20, damage: 20, attacks: true}

	tower = unit{name: "Tower", team: model.PlayerTeam, hp: 50, attackRange: 20, damage: 10, cost: 40, attacks: true}

	playerBase = unit{name: model.BaseClassName, team: model.PlayerTeam, hp: 10}
)

func newTestLevel(gold int, paths ...[]model.Vec) *Level {
	f := NewFactory()
	for _, u := range []unit{orc, brute, tower, playerBase} {
		u.register(f)
	}
	return NewLevel(Config{Factory: f, Paths: paths, StartGold: gold})
}

func runFrames(l *Level, n int, dt float64) {
	for range n {
		l.Update(dt)
	}
}
