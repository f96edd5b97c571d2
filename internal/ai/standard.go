package ai

import (
	"log/slog"

	"github.com/udisondev/towerdefence/internal/model"
)

// TargetFilter decides whether candidate may be attacked by self.
type TargetFilter func(self, candidate *model.Actor) bool

// EnemyFilter accepts living actors of the other team.
func EnemyFilter(self, candidate *model.Actor) bool {
	return candidate != self &&
		candidate.Team() != self.Team() &&
		!candidate.IsDead()
}

// BaseFilter accepts only the enemy base.
func BaseFilter(self, candidate *model.Actor) bool {
	return EnemyFilter(self, candidate) && candidate.Name() == model.BaseClassName
}

// StandardAI picks the first acceptable actor from the precomputed
// attack-range list and hands it to the actor's attack controller.
// It performs no spatial queries itself.
type StandardAI struct {
	actor  *model.Actor
	filter TargetFilter
	kind   string
}

// NewStandardAI creates AI that attacks any enemy in range.
func NewStandardAI() *StandardAI {
	return &StandardAI{filter: EnemyFilter, kind: "StandardAI"}
}

// NewAttackOnlyBase creates AI that ignores everything but the base.
func NewAttackOnlyBase() *StandardAI {
	return &StandardAI{filter: BaseFilter, kind: "AttackOnlyBase"}
}

// Bind attaches AI to actor.
func (ai *StandardAI) Bind(a *model.Actor) {
	ai.actor = a
}

// Kind returns AI kind name.
func (ai *StandardAI) Kind() string {
	return ai.kind
}

// Update selects a target. Dead actors do nothing.
func (ai *StandardAI) Update(float64) {
	if ai.actor.IsDead() {
		return
	}

	target := ai.selectTarget()
	if target == nil {
		return
	}

	attack, ok := model.FindController[model.Targeter](ai.actor)
	if !ok {
		return
	}

	if IsDebugEnabled() && attack.Target() != target {
		slog.Debug("AI target selected",
			"ai", ai.kind,
			"objectID", ai.actor.ObjectID(),
			"name", ai.actor.Name(),
			"target", target.ObjectID(),
			"targetName", target.Name())
	}
	attack.SetTarget(target)
}

func (ai *StandardAI) selectTarget() *model.Actor {
	for _, candidate := range ai.actor.ActorsInAttackRange() {
		if ai.filter(ai.actor, candidate) {
			return candidate
		}
	}
	return nil
}
