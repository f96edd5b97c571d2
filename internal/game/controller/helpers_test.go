package controller

import "github.com/udisondev/towerdefence/internal/model"

type stubAnimation struct {
	finished bool
	plays    int
}

func (s *stubAnimation) Play() {
	s.finished = false
	s.plays++
}

func (s *stubAnimation) Stop()             {}
func (s *stubAnimation) CurrentFrame() int { return 0 }
func (s *stubAnimation) IsFinished() bool  { return s.finished }

type sinkRecorder struct {
	spawned []model.Object
}

func (r *sinkRecorder) Spawn(obj model.Object) {
	r.spawned = append(r.spawned, obj)
}

func newActor(name string, speed, attackRange float64) *model.Actor {
	s := model.NewStatistics()
	s.SetValue(model.StatMaxHealth, 10)
	s.SetValue(model.StatSpeed, speed)
	s.SetValue(model.StatAttackRange, attackRange)
	s.SetValue(model.StatBulletSpeed, 50)
	s.SetHitEffects([]model.EffectSpec{{Name: "HitEffect", Params: map[string]float64{"damage": 3}}})
	return model.NewActor(model.ClassProperties{Name: name}, s, 10, 10)
}
