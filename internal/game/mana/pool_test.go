package mana

import (
	"testing"
)

func TestManaPool_Add(t *testing.T) {
	pool := NewManaPool(1)

	pool.Add(2)
	if pool.Amount() != 3 {
		t.Errorf("Expected 3 mana, got %d", pool.Amount())
	}

	pool.Add(0)
	pool.Add(-4)
	if pool.Amount() != 3 {
		t.Errorf("Expected non-positive adds to be ignored, got %d", pool.Amount())
	}
}

func TestManaPool_Spend(t *testing.T) {
	pool := NewManaPool(5)

	if !pool.Spend(2) {
		t.Error("Expected to spend 2 mana")
	}
	if pool.Amount() != 3 {
		t.Errorf("Expected 3 mana remaining, got %d", pool.Amount())
	}

	// Try to spend more than available
	if pool.Spend(4) {
		t.Error("Expected to fail spending 4 mana when only 3 available")
	}
	if pool.Amount() != 3 {
		t.Errorf("Expected failed spend to leave pool untouched, got %d", pool.Amount())
	}

	if !pool.Spend(0) {
		t.Error("Expected zero-cost spend to succeed")
	}
}

func TestManaPool_CanPay(t *testing.T) {
	pool := NewManaPool(2)
	if !pool.CanPay(2) {
		t.Error("Expected pool of 2 to pay cost 2")
	}
	if pool.CanPay(3) {
		t.Error("Expected pool of 2 to refuse cost 3")
	}
}

func TestManaPool_Empty(t *testing.T) {
	pool := NewManaPool(7)
	pool.Empty()
	if pool.Amount() != 0 {
		t.Errorf("Expected empty pool, got %d", pool.Amount())
	}
}

func TestNewManaPoolClampsNegative(t *testing.T) {
	if got := NewManaPool(-3).Amount(); got != 0 {
		t.Errorf("Expected negative start to clamp to 0, got %d", got)
	}
}

func TestRoundGrant(t *testing.T) {
	cases := []struct {
		round, max, want int
	}{
		{1, 10, 1},
		{2, 10, 2},
		{10, 10, 10},
		{11, 10, 10},
		{25, 10, 10},
		{12, 0, 10},
		{3, 2, 2},
	}
	for _, tc := range cases {
		if got := RoundGrant(tc.round, tc.max); got != tc.want {
			t.Errorf("RoundGrant(%d, %d) = %d, want %d", tc.round, tc.max, got, tc.want)
		}
	}
}
