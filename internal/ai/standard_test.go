package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/towerdefence/internal/game/controller"
	"github.com/udisondev/towerdefence/internal/model"
)

func newActor(name string, team model.Team) *model.Actor {
	s := model.NewStatistics()
	s.SetValue(model.StatMaxHealth, 10)
	s.SetValue(model.StatAttackRange, 50)
	a := model.NewActor(model.ClassProperties{Name: name}, s, 10, 10)
	a.SetTeam(team)
	return a
}

type endlessAnimation struct{}

func (endlessAnimation) Play()             {}
func (endlessAnimation) Stop()             {}
func (endlessAnimation) CurrentFrame() int { return 0 }
func (endlessAnimation) IsFinished() bool  { return false }

func TestStandardAI_PicksFirstEnemy(t *testing.T) {
	tower := newActor("ArrowTower", model.PlayerTeam)
	attack := controller.NewAttackController()
	tower.AddController(attack)
	tower.SetAI(NewStandardAI())
	tower.SetAnimation(model.StateAttack, endlessAnimation{})

	friend := newActor("Wall", model.PlayerTeam)
	dead := newActor("Orc", model.EnemyTeam)
	dead.Hit(100)
	first := newActor("Goblin", model.EnemyTeam)
	second := newActor("Troll", model.EnemyTeam)
	tower.SetActorsInAttackRange([]*model.Actor{friend, dead, first, second})

	tower.Update(0.1)

	assert.Same(t, first, attack.Target())
	assert.Equal(t, model.StateAttack, tower.State())
}

func TestStandardAI_NoCandidates(t *testing.T) {
	tower := newActor("ArrowTower", model.PlayerTeam)
	attack := controller.NewAttackController()
	tower.AddController(attack)
	tower.SetAI(NewStandardAI())

	tower.Update(0.1)

	assert.Nil(t, attack.Target())
	assert.Equal(t, model.StateIdle, tower.State())
}

func TestStandardAI_SkipsWhenDead(t *testing.T) {
	tower := newActor("ArrowTower", model.PlayerTeam)
	attack := controller.NewAttackController()
	tower.AddController(attack)
	tower.SetAI(NewStandardAI())
	tower.SetActorsInAttackRange([]*model.Actor{newActor("Goblin", model.EnemyTeam)})

	tower.Hit(100)
	tower.Update(0.1)

	assert.Nil(t, attack.Target())
}

func TestStandardAI_WithoutAttackController(t *testing.T) {
	a := newActor("Peasant", model.EnemyTeam)
	a.SetAI(NewStandardAI())
	a.SetActorsInAttackRange([]*model.Actor{newActor("Base", model.PlayerTeam)})

	require.NotPanics(t, func() { a.Update(0.1) })
	assert.Equal(t, model.StateIdle, a.State())
}

func TestAttackOnlyBase(t *testing.T) {
	orc := newActor("Orc", model.EnemyTeam)
	attack := controller.NewAttackController()
	orc.AddController(attack)
	orc.SetAI(NewAttackOnlyBase())

	tower := newActor("ArrowTower", model.PlayerTeam)
	base := newActor(model.BaseClassName, model.PlayerTeam)
	orc.SetActorsInAttackRange([]*model.Actor{tower, base})

	orc.Update(0.1)

	assert.Same(t, base, attack.Target())
}

func TestFilters(t *testing.T) {
	self := newActor("Orc", model.EnemyTeam)
	mate := newActor("Orc", model.EnemyTeam)
	base := newActor(model.BaseClassName, model.PlayerTeam)
	tower := newActor("ArrowTower", model.PlayerTeam)

	assert.False(t, EnemyFilter(self, self))
	assert.False(t, EnemyFilter(self, mate))
	assert.True(t, EnemyFilter(self, tower))
	assert.True(t, BaseFilter(self, base))
	assert.False(t, BaseFilter(self, tower))
}
