package entity

import "github.com/magefree/duel-server-go/internal/game/mana"

// Fixed row ownership.
const (
	PlayerOneFrontRow = 2
	PlayerOneBackRow  = 3
	PlayerTwoFrontRow = 1
	PlayerTwoBackRow  = 0
)

// Player is one side of a game.
type Player struct {
	Index    int
	Mana     *mana.ManaPool
	Turn     bool
	FrontRow int
	BackRow  int
	Deck     *Deck
	Hand     *Hand
	Hero     *Hero
}

// NewPlayer creates player one or two with its fixed rows and starting mana.
func NewPlayer(index int, deck *Deck, hero *Hero, startingMana int) *Player {
	p := &Player{
		Index: index,
		Mana:  mana.NewManaPool(startingMana),
		Deck:  deck,
		Hand:  NewHand(),
		Hero:  hero,
	}
	if index == 1 {
		p.FrontRow, p.BackRow = PlayerOneFrontRow, PlayerOneBackRow
	} else {
		p.FrontRow, p.BackRow = PlayerTwoFrontRow, PlayerTwoBackRow
	}
	return p
}

// OwnsRow reports whether row is one of the player's two rows.
func (p *Player) OwnsRow(row int) bool {
	return row == p.FrontRow || row == p.BackRow
}

// Rows returns the player's rows, front first.
func (p *Player) Rows() [2]int {
	return [2]int{p.FrontRow, p.BackRow}
}

// DrawCard moves the front card of the deck into the hand.
// It reports false when the deck is empty.
func (p *Player) DrawCard() bool {
	card, ok := p.Deck.Draw()
	if !ok {
		return false
	}
	p.Hand.Add(card)
	return true
}
