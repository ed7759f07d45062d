package entity

import "github.com/magefree/duel-server-go/internal/game/catalog"

// DefaultHeroHealth is the health every hero starts a game with.
const DefaultHeroHealth = 30

// Card is a minion card. It moves from deck to hand to a board cell.
type Card struct {
	Mana         int
	AttackDamage int
	Health       int
	Description  string
	Colors       []string
	Name         string

	Frozen      bool
	HasAttacked bool
	Dead        bool
}

// NewCard creates a minion card with cleared status flags.
func NewCard(mana, attackDamage, health int, description string, colors []string, name string) *Card {
	return &Card{
		Mana:         mana,
		AttackDamage: attackDamage,
		Health:       health,
		Description:  description,
		Colors:       append([]string(nil), colors...),
		Name:         name,
	}
}

// Clone returns an independent copy of the card.
func (c *Card) Clone() *Card {
	clone := *c
	clone.Colors = append([]string(nil), c.Colors...)
	return &clone
}

// Minion returns the catalog entry for the card's identity.
func (c *Card) Minion() (catalog.Minion, bool) {
	return catalog.LookupMinion(c.Name)
}

// IsTaunt reports whether the card forces enemy attacks onto itself.
func (c *Card) IsTaunt() bool {
	return catalog.IsTaunt(c.Name)
}

// Hero is a player's commander. It is never replaced during a game.
type Hero struct {
	Mana        int
	Description string
	Colors      []string
	Name        string
	Health      int

	// HasAttacked is set by the hero ability and blocks a second use in the same round.
	HasAttacked bool
	Dead        bool
}

// NewHero creates a hero at full health.
func NewHero(mana int, description string, colors []string, name string, health int) *Hero {
	if health <= 0 {
		health = DefaultHeroHealth
	}
	return &Hero{
		Mana:        mana,
		Description: description,
		Colors:      append([]string(nil), colors...),
		Name:        name,
		Health:      health,
	}
}

// TakeDamage lowers the hero's health and marks it dead once it reaches zero.
func (h *Hero) TakeDamage(amount int) {
	h.Health -= amount
	if h.Health <= 0 {
		h.Dead = true
	}
}

// Ability returns the catalog entry for the hero's identity.
func (h *Hero) Ability() (catalog.Hero, bool) {
	return catalog.LookupHero(h.Name)
}
