package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/towerdefence/internal/logic"
)

// ErrSessionNotFound is returned by Get for unknown run ids.
var ErrSessionNotFound = errors.New("session not found")

// Session is the stored summary of one simulation run.
type Session struct {
	RunID          uuid.UUID
	LevelFile      string
	Outcome        string
	PlayerGold     int
	MonstersKilled int
	TimeElapsed    float64
	Frames         int64
	FinishedAt     time.Time
}

// NewSession builds a session record from the final game state.
func NewSession(state logic.GameState, levelFile string, frames uint64, finishedAt time.Time) Session {
	return Session{
		RunID:          state.RunID,
		LevelFile:      levelFile,
		Outcome:        state.Outcome.String(),
		PlayerGold:     state.PlayerGold,
		MonstersKilled: state.MonstersKilled,
		TimeElapsed:    state.TimeElapsed,
		Frames:         int64(frames),
		FinishedAt:     finishedAt.UTC(),
	}
}

// SessionRepository handles sessions table operations
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Save inserts session or overwrites the row with the same run id.
func (r *SessionRepository) Save(ctx context.Context, s Session) error {
	query := `
		INSERT INTO sessions (run_id, level_file, outcome, player_gold, monsters_killed, time_elapsed, frames, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id) DO UPDATE SET
			level_file = EXCLUDED.level_file,
			outcome = EXCLUDED.outcome,
			player_gold = EXCLUDED.player_gold,
			monsters_killed = EXCLUDED.monsters_killed,
			time_elapsed = EXCLUDED.time_elapsed,
			frames = EXCLUDED.frames,
			finished_at = EXCLUDED.finished_at
	`

	_, err := r.pool.Exec(ctx, query,
		s.RunID.String(), s.LevelFile, s.Outcome, s.PlayerGold,
		s.MonstersKilled, s.TimeElapsed, s.Frames, s.FinishedAt)
	if err != nil {
		return fmt.Errorf("saving session %s: %w", s.RunID, err)
	}

	slog.Debug("session saved", "runID", s.RunID, "outcome", s.Outcome)
	return nil
}

// Get loads session by run id.
func (r *SessionRepository) Get(ctx context.Context, runID uuid.UUID) (Session, error) {
	query := `
		SELECT run_id, level_file, outcome, player_gold, monsters_killed, time_elapsed, frames, finished_at
		FROM sessions
		WHERE run_id = $1
	`

	s, err := scanSession(r.pool.QueryRow(ctx, query, runID.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, fmt.Errorf("loading session %s: %w", runID, ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("loading session %s: %w", runID, err)
	}
	return s, nil
}

// Recent returns up to limit sessions, newest first.
func (r *SessionRepository) Recent(ctx context.Context, limit int) ([]Session, error) {
	query := `
		SELECT run_id, level_file, outcome, player_gold, monsters_killed, time_elapsed, frames, finished_at
		FROM sessions
		ORDER BY finished_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0, limit)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	return sessions, nil
}

func scanSession(row pgx.Row) (Session, error) {
	var (
		s     Session
		runID string
	)
	err := row.Scan(&runID, &s.LevelFile, &s.Outcome, &s.PlayerGold,
		&s.MonstersKilled, &s.TimeElapsed, &s.Frames, &s.FinishedAt)
	if err != nil {
		return Session{}, err
	}

	s.RunID, err = uuid.Parse(runID)
	if err != nil {
		return Session{}, fmt.Errorf("parsing run id %q: %w", runID, err)
	}
	return s, nil
}
