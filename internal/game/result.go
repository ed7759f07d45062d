package game

import (
	"errors"

	"github.com/magefree/duel-server-go/internal/game/entity"
)

// Rule violations. The messages are part of the output format.
var (
	ErrPlaceNotEnoughMana    = errors.New("Not enough mana to place card on table.")
	ErrTargetNotEnemy        = errors.New("Attacked card does not belong to the enemy.")
	ErrTargetNotAlly         = errors.New("Attacked card does not belong to the current player.")
	ErrAttackerAttacked      = errors.New("Attacker card has already attacked this turn.")
	ErrAttackerFrozen        = errors.New("Attacker card is frozen.")
	ErrTargetNotTank         = errors.New("Attacked card is not of type 'Tank'.")
	ErrHeroNotEnoughMana     = errors.New("Not enough mana to use hero's ability.")
	ErrHeroAttacked          = errors.New("Hero has already attacked this turn.")
	ErrRowNotEnemy           = errors.New("Selected row does not belong to the enemy.")
	ErrRowNotCurrentPlayer   = errors.New("Selected row does not belong to the current player.")
)

const (
	noCardAtPositionMessage = "No card available at that position."
	playerOneKilledHeroMsg  = "Player one killed the enemy hero."
	playerTwoKilledHeroMsg  = "Player two killed the enemy hero."
)

// Result is one output record. Absent fields are omitted when encoded.
type Result struct {
	Command      string        `json:"command,omitempty"`
	HandIdx      *int          `json:"handIdx,omitempty"`
	PlayerIdx    *int          `json:"playerIdx,omitempty"`
	CardAttacker *entity.Coord `json:"cardAttacker,omitempty"`
	CardAttacked *entity.Coord `json:"cardAttacked,omitempty"`
	AffectedRow  *int          `json:"affectedRow,omitempty"`
	X            *int          `json:"x,omitempty"`
	Y            *int          `json:"y,omitempty"`
	Output       any           `json:"output,omitempty"`
	Error        string        `json:"error,omitempty"`
	GameEnded    string        `json:"gameEnded,omitempty"`
}

// Failed reports whether the record carries a rule violation.
func (r Result) Failed() bool {
	return r.Error != ""
}

// CardView is the serialized form of a minion card.
type CardView struct {
	Mana         int      `json:"mana"`
	AttackDamage int      `json:"attackDamage"`
	Health       int      `json:"health"`
	Description  string   `json:"description"`
	Colors       []string `json:"colors"`
	Name         string   `json:"name"`
}

// HeroView is the serialized form of a hero.
type HeroView struct {
	Mana        int      `json:"mana"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Name        string   `json:"name"`
	Health      int      `json:"health"`
}

func intPtr(v int) *int {
	return &v
}

func coordPtr(c entity.Coord) *entity.Coord {
	return &c
}

func colorsOf(colors []string) []string {
	return append(make([]string, 0, len(colors)), colors...)
}

func newCardView(c *entity.Card) CardView {
	return CardView{
		Mana:         c.Mana,
		AttackDamage: c.AttackDamage,
		Health:       c.Health,
		Description:  c.Description,
		Colors:       colorsOf(c.Colors),
		Name:         c.Name,
	}
}

func newCardViews(cards []*entity.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, newCardView(c))
	}
	return views
}

func newHeroView(h *entity.Hero) HeroView {
	return HeroView{
		Mana:        h.Mana,
		Description: h.Description,
		Colors:      colorsOf(h.Colors),
		Name:        h.Name,
		Health:      h.Health,
	}
}
