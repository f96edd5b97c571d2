package logic

import "github.com/google/uuid"

// Outcome of a game session.
type Outcome int8

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "running"
	}
}

// GameState is the global economy and progress of one session.
// Mutated only by Manager.
type GameState struct {
	RunID          uuid.UUID
	PlayerGold     int
	MonstersKilled int
	EnemiesAlive   int
	TimeElapsed    float64
	Outcome        Outcome
}
