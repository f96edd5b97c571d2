package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/towerdefence/internal/logic"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	setupTestDB(t)

	version, err := RunMigrations(context.Background(), testDSN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	d := setupTestDB(t)
	repo := d.Sessions()
	ctx := context.Background()

	state := logic.GameState{
		RunID:          uuid.New(),
		PlayerGold:     140,
		MonstersKilled: 12,
		TimeElapsed:    61.5,
		Outcome:        logic.Won,
	}
	finished := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession(state, "data/level.yaml", 1230, finished)

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, state.RunID)
	require.NoError(t, err)
	assert.Equal(t, state.RunID, got.RunID)
	assert.Equal(t, "won", got.Outcome)
	assert.Equal(t, 140, got.PlayerGold)
	assert.Equal(t, 12, got.MonstersKilled)
	assert.InDelta(t, 61.5, got.TimeElapsed, 1e-9)
	assert.Equal(t, int64(1230), got.Frames)
	assert.True(t, finished.Equal(got.FinishedAt))

	s.Outcome = logic.Lost.String()
	require.NoError(t, repo.Save(ctx, s))
	got, err = repo.Get(ctx, state.RunID)
	require.NoError(t, err)
	assert.Equal(t, "lost", got.Outcome, "save overwrites the same run")
}

func TestSessionRepository_GetUnknown(t *testing.T) {
	d := setupTestDB(t)

	_, err := d.Sessions().Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Recent(t *testing.T) {
	d := setupTestDB(t)
	repo := d.Sessions()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		state := logic.GameState{RunID: uuid.New(), Outcome: logic.Won}
		ids = append(ids, state.RunID)
		require.NoError(t, repo.Save(ctx, NewSession(state, "l.yaml", 1, base.Add(time.Duration(i)*time.Hour))))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[2], recent[0].RunID)
	assert.Equal(t, ids[1], recent[1].RunID)
}
