package model

import (
	"context"
	"errors"
	"log/slog"

	"github.com/looplab/fsm"
)

// ActorState — состояние актёра. Переходы заданы явной таблицей ниже.
type ActorState int8

const (
	StateIdle ActorState = iota
	StateMove
	StateAttack
	StateDeath
)

var stateNames = [...]string{
	StateIdle:   "idle",
	StateMove:   "move",
	StateAttack: "attack",
	StateDeath:  "death",
}

// String returns human-readable state name.
func (s ActorState) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// ParseState converts a state name ("idle", "move", "attack", "death").
// Returns false for unknown names.
func ParseState(name string) (ActorState, bool) {
	for i, n := range stateNames {
		if n == name {
			return ActorState(i), true
		}
	}
	return 0, false
}

// eventTo — событие автомата, ведущее в состояние.
var eventTo = map[ActorState]string{
	StateIdle:   "stand",
	StateMove:   "walk",
	StateAttack: "attack",
	StateDeath:  "die",
}

// Таблица переходов. DEATH терминально.
var stateTransitions = fsm.Events{
	{Name: "stand", Src: []string{"move", "attack"}, Dst: "idle"},
	{Name: "walk", Src: []string{"idle", "attack"}, Dst: "move"},
	{Name: "attack", Src: []string{"idle", "move"}, Dst: "attack"},
	{Name: "die", Src: []string{"idle", "move", "attack"}, Dst: "death"},
}

// newStateMachine строит автомат актёра. onEnter вызывается после каждого
// успешного перехода с предыдущим и новым состоянием.
func newStateMachine(onEnter func(from, to ActorState)) *fsm.FSM {
	return fsm.NewFSM(
		StateIdle.String(),
		stateTransitions,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				from, _ := ParseState(e.Src)
				to, _ := ParseState(e.Dst)
				onEnter(from, to)
			},
		},
	)
}

// CanTransition reports whether the table allows from → to.
func CanTransition(from, to ActorState) bool {
	if from == to {
		return true
	}
	ev := eventTo[to]
	for _, t := range stateTransitions {
		if t.Name != ev {
			continue
		}
		for _, src := range t.Src {
			if src == from.String() {
				return true
			}
		}
	}
	return false
}

// ChangeState переводит актёра в состояние to.
// Повторный переход в текущее состояние — no-op (true).
// Запрещённый таблицей переход отклоняется (false), например выход из DEATH.
func (a *Actor) ChangeState(to ActorState) bool {
	if a.state == to {
		return true
	}

	err := a.machine.Event(context.Background(), eventTo[to])
	if err == nil {
		return true
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return true
	}

	slog.Debug("state transition rejected",
		"objectID", a.ObjectID(),
		"name", a.props.Name,
		"from", a.state,
		"to", to,
		"error", err)
	return false
}

// State returns the current state.
func (a *Actor) State() ActorState {
	return a.state
}

// IsDead reports whether the actor entered DEATH.
func (a *Actor) IsDead() bool {
	return a.state == StateDeath
}
