package mana

import (
	"sync"
)

// DefaultMaxGrant caps the mana a player receives at the start of a round.
const DefaultMaxGrant = 10

// ManaPool holds a player's spendable mana. Mana carries over between rounds
// and is only reduced by spending.
type ManaPool struct {
	mu     sync.RWMutex
	amount int
}

// NewManaPool creates a pool holding the given starting amount.
func NewManaPool(initial int) *ManaPool {
	if initial < 0 {
		initial = 0
	}
	return &ManaPool{amount: initial}
}

// Add adds mana to the pool. Non-positive amounts are ignored.
func (mp *ManaPool) Add(amount int) {
	if amount <= 0 {
		return
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.amount += amount
}

// Amount returns the mana currently available.
func (mp *ManaPool) Amount() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.amount
}

// CanPay reports whether the pool holds at least cost mana.
func (mp *ManaPool) CanPay(cost int) bool {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.amount >= cost
}

// Spend attempts to spend mana from the pool.
// Returns true if successful, false if insufficient mana.
func (mp *ManaPool) Spend(cost int) bool {
	if cost <= 0 {
		return true
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.amount < cost {
		return false
	}
	mp.amount -= cost
	return true
}

// Empty drains the pool.
func (mp *ManaPool) Empty() {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.amount = 0
}

// RoundGrant returns the mana each player receives when the given round begins.
func RoundGrant(round, maxGrant int) int {
	if maxGrant <= 0 {
		maxGrant = DefaultMaxGrant
	}
	if round > maxGrant {
		return maxGrant
	}
	return round
}
