package rules

import "fmt"

// Seat identifies one of the two players.
type Seat int

const (
	SeatPlayerOne Seat = 1
	SeatPlayerTwo Seat = 2
)

func (s Seat) String() string {
	switch s {
	case SeatPlayerOne:
		return "PLAYER_ONE"
	case SeatPlayerTwo:
		return "PLAYER_TWO"
	default:
		return fmt.Sprintf("SEAT_%d", int(s))
	}
}

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	if s == SeatPlayerOne {
		return SeatPlayerTwo
	}
	return SeatPlayerOne
}

// TurnEnd describes what happened when a turn was ended.
type TurnEnd struct {
	// Ended is the seat whose turn just finished.
	Ended Seat
	// Next is the seat that now holds the turn.
	Next Seat
	// RoundStarted is true when both players have now had a turn in the round.
	RoundStarted bool
	// Round is the round number after the transition.
	Round int
}

// TurnManager tracks the active seat, turn count and round number.
// A round is two turns, one per player.
type TurnManager struct {
	turnCount    int
	round        int
	activePlayer Seat
}

// NewTurnManager creates a turn manager at round 1 with the given seat to act.
func NewTurnManager(startingPlayer Seat) *TurnManager {
	if startingPlayer != SeatPlayerTwo {
		startingPlayer = SeatPlayerOne
	}
	return &TurnManager{
		turnCount:    0,
		round:        1,
		activePlayer: startingPlayer,
	}
}

// ActivePlayer returns the seat that currently has the turn.
func (tm *TurnManager) ActivePlayer() Seat {
	return tm.activePlayer
}

// TurnCount returns how many turns have ended.
func (tm *TurnManager) TurnCount() int {
	return tm.turnCount
}

// Round returns the current round number (1-based).
func (tm *TurnManager) Round() int {
	return tm.round
}

// EndTurn passes the turn to the other seat. Every second call starts a new round.
func (tm *TurnManager) EndTurn() TurnEnd {
	tm.turnCount++
	end := TurnEnd{Ended: tm.activePlayer}

	if tm.turnCount%2 == 0 {
		tm.round++
		end.RoundStarted = true
	}

	tm.activePlayer = tm.activePlayer.Opponent()
	end.Next = tm.activePlayer
	end.Round = tm.round
	return end
}
