package entity

import "github.com/magefree/duel-server-go/internal/game/shuffle"

// Deck is an ordered pile of cards drawn from the front.
type Deck struct {
	cards []*Card
}

// NewDeck creates a deck holding the given cards in order.
func NewDeck(cards []*Card) *Deck {
	return &Deck{cards: append([]*Card(nil), cards...)}
}

// Shuffle permutes the deck with the seeded generator.
func (d *Deck) Shuffle(seed int64) {
	shuffle.Shuffle(len(d.cards), seed, func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (*Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return card, true
}

// Size returns the number of cards left.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns the remaining cards in draw order.
func (d *Deck) Cards() []*Card {
	return append([]*Card(nil), d.cards...)
}

// Hand holds the cards a player may place.
type Hand struct {
	cards []*Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Add appends a card to the end of the hand.
func (h *Hand) Add(card *Card) {
	h.cards = append(h.cards, card)
}

// At returns the card at idx without removing it.
func (h *Hand) At(idx int) (*Card, bool) {
	if idx < 0 || idx >= len(h.cards) {
		return nil, false
	}
	return h.cards[idx], true
}

// Remove takes the card at idx out of the hand, shifting later cards left.
func (h *Hand) Remove(idx int) (*Card, bool) {
	card, ok := h.At(idx)
	if !ok {
		return nil, false
	}
	h.cards = append(h.cards[:idx], h.cards[idx+1:]...)
	return card, true
}

// Len returns the hand size.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns the hand in order.
func (h *Hand) Cards() []*Card {
	return append([]*Card(nil), h.cards...)
}
