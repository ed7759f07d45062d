package rules

import "testing"

func TestTurnManagerStartsAtRoundOne(t *testing.T) {
	tm := NewTurnManager(SeatPlayerTwo)

	if tm.Round() != 1 {
		t.Fatalf("expected round 1, got %d", tm.Round())
	}
	if tm.TurnCount() != 0 {
		t.Fatalf("expected turn count 0, got %d", tm.TurnCount())
	}
	if tm.ActivePlayer() != SeatPlayerTwo {
		t.Fatalf("expected player two to start, got %s", tm.ActivePlayer())
	}
}

func TestTurnManagerInvalidSeatDefaultsToPlayerOne(t *testing.T) {
	tm := NewTurnManager(Seat(7))
	if tm.ActivePlayer() != SeatPlayerOne {
		t.Fatalf("expected player one, got %s", tm.ActivePlayer())
	}
}

func TestTurnManagerRoundEveryTwoTurns(t *testing.T) {
	tm := NewTurnManager(SeatPlayerOne)

	expected := []struct {
		ended        Seat
		next         Seat
		roundStarted bool
		round        int
	}{
		{SeatPlayerOne, SeatPlayerTwo, false, 1},
		{SeatPlayerTwo, SeatPlayerOne, true, 2},
		{SeatPlayerOne, SeatPlayerTwo, false, 2},
		{SeatPlayerTwo, SeatPlayerOne, true, 3},
	}

	for i, exp := range expected {
		end := tm.EndTurn()
		if end.Ended != exp.ended || end.Next != exp.next {
			t.Fatalf("turn %d: expected %s -> %s, got %s -> %s", i, exp.ended, exp.next, end.Ended, end.Next)
		}
		if end.RoundStarted != exp.roundStarted {
			t.Fatalf("turn %d: expected roundStarted=%v", i, exp.roundStarted)
		}
		if end.Round != exp.round || tm.Round() != exp.round {
			t.Fatalf("turn %d: expected round %d, got %d", i, exp.round, end.Round)
		}
	}

	if tm.TurnCount() != 4 {
		t.Fatalf("expected 4 turns, got %d", tm.TurnCount())
	}
}

func TestSeatOpponent(t *testing.T) {
	if SeatPlayerOne.Opponent() != SeatPlayerTwo || SeatPlayerTwo.Opponent() != SeatPlayerOne {
		t.Fatal("opponent seats are not symmetric")
	}
	if SeatPlayerOne.String() != "PLAYER_ONE" {
		t.Fatalf("unexpected seat name %s", SeatPlayerOne)
	}
}
