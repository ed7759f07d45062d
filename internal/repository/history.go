// Package repository persists finished games.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"
)

// GameRecord is the audit row written when a game of a session finishes.
type GameRecord struct {
	GameID          string
	SessionID       string
	GameIndex       int
	Winner          int // 0 when no hero died
	PlayerOneHero   string
	PlayerTwoHero   string
	PlayerOneHealth int
	PlayerTwoHealth int
	Turns           int
	Rounds          int
	Actions         int
	Eliminations    int
	Checksum        string
	PlayedAt        time.Time
}

// HistoryStore records finished games.
type HistoryStore interface {
	RecordGame(ctx context.Context, rec GameRecord) error
	ListGames(ctx context.Context, limit int) ([]GameRecord, error)
	Close()
}

// MemoryStore keeps history in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []GameRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// RecordGame appends a record.
func (m *MemoryStore) RecordGame(ctx context.Context, rec GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// ListGames returns up to limit records, newest first. A non-positive limit
// returns everything.
func (m *MemoryStore) ListGames(ctx context.Context, limit int) ([]GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	out := append([]GameRecord(nil), m.records...)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() {}
