package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS duel_games (
	game_id           UUID PRIMARY KEY,
	session_id        UUID NOT NULL,
	game_index        INT NOT NULL,
	winner            SMALLINT NOT NULL,
	player_one_hero   TEXT NOT NULL,
	player_two_hero   TEXT NOT NULL,
	player_one_health INT NOT NULL,
	player_two_health INT NOT NULL,
	turns             INT NOT NULL,
	rounds            INT NOT NULL,
	actions           INT NOT NULL,
	eliminations      INT NOT NULL,
	checksum          TEXT NOT NULL,
	played_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_duel_games_session ON duel_games(session_id);
CREATE INDEX IF NOT EXISTS idx_duel_games_played_at ON duel_games(played_at DESC);
`

const insertGameSQL = `
INSERT INTO duel_games (
	game_id, session_id, game_index, winner,
	player_one_hero, player_two_hero, player_one_health, player_two_health,
	turns, rounds, actions, eliminations, checksum, played_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (game_id) DO NOTHING`

const listGamesSQL = `
SELECT game_id::text, session_id::text, game_index, winner,
	player_one_hero, player_two_hero, player_one_health, player_two_health,
	turns, rounds, actions, eliminations, checksum, played_at
FROM duel_games
ORDER BY played_at DESC
LIMIT $1`

// Store is the PostgreSQL history store.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore connects to Postgres and ensures the history table exists.
// If databaseURL is empty, NewStore returns (nil, nil) and no persistence occurs.
func NewStore(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	if databaseURL == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	stats := pool.Stat()
	logger.Info("database connection pool initialized",
		zap.Int32("total_conns", stats.TotalConns()),
		zap.Int32("idle_conns", stats.IdleConns()),
	)
	return &Store{pool: pool, logger: logger}, nil
}

// RecordGame inserts a finished game. Re-recording the same game ID is a no-op.
func (s *Store) RecordGame(ctx context.Context, rec GameRecord) error {
	if s == nil || s.pool == nil {
		return nil
	}
	playedAt := rec.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx, insertGameSQL,
		rec.GameID, rec.SessionID, rec.GameIndex, rec.Winner,
		rec.PlayerOneHero, rec.PlayerTwoHero, rec.PlayerOneHealth, rec.PlayerTwoHealth,
		rec.Turns, rec.Rounds, rec.Actions, rec.Eliminations, rec.Checksum, playedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game %s: %w", rec.GameID, err)
	}
	return nil
}

// ListGames returns the most recent games, newest first.
func (s *Store) ListGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if s == nil || s.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, listGamesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	records, err := pgx.CollectRows(rows, scanGameRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to scan games: %w", err)
	}
	return records, nil
}

func scanGameRecord(row pgx.CollectableRow) (GameRecord, error) {
	var rec GameRecord
	err := row.Scan(
		&rec.GameID, &rec.SessionID, &rec.GameIndex, &rec.Winner,
		&rec.PlayerOneHero, &rec.PlayerTwoHero, &rec.PlayerOneHealth, &rec.PlayerTwoHealth,
		&rec.Turns, &rec.Rounds, &rec.Actions, &rec.Eliminations, &rec.Checksum, &rec.PlayedAt,
	)
	return rec, err
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
