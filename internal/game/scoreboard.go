package game

import (
	"sync"

	"github.com/magefree/duel-server-go/internal/game/rules"
)

// Scoreboard tracks wins across every game of a session.
type Scoreboard struct {
	mu            sync.RWMutex
	playerOneWins int
	playerTwoWins int
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// RecordWin credits a win to seat.
func (s *Scoreboard) RecordWin(seat rules.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch seat {
	case rules.SeatPlayerOne:
		s.playerOneWins++
	case rules.SeatPlayerTwo:
		s.playerTwoWins++
	}
}

// Wins returns the wins credited to seat.
func (s *Scoreboard) Wins(seat rules.Seat) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch seat {
	case rules.SeatPlayerOne:
		return s.playerOneWins
	case rules.SeatPlayerTwo:
		return s.playerTwoWins
	}
	return 0
}

// GamesPlayed counts finished games. Games that never produced a winner are
// not counted.
func (s *Scoreboard) GamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerOneWins + s.playerTwoWins
}
