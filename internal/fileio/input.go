// Package fileio reads session input documents and writes result documents.
package fileio

import (
	"fmt"

	"github.com/magefree/duel-server-go/internal/game"
	"github.com/magefree/duel-server-go/internal/game/entity"
)

// CardInput describes a minion card in a deck.
type CardInput struct {
	Mana         int      `json:"mana" yaml:"mana"`
	AttackDamage int      `json:"attackDamage" yaml:"attackDamage"`
	Health       int      `json:"health" yaml:"health"`
	Description  string   `json:"description" yaml:"description"`
	Colors       []string `json:"colors" yaml:"colors"`
	Name         string   `json:"name" yaml:"name"`
}

// NewCard builds a fresh card from the input.
func (c CardInput) NewCard() *entity.Card {
	return entity.NewCard(c.Mana, c.AttackDamage, c.Health, c.Description, c.Colors, c.Name)
}

// HeroInput describes a hero.
type HeroInput struct {
	Mana        int      `json:"mana" yaml:"mana"`
	Description string   `json:"description" yaml:"description"`
	Colors      []string `json:"colors" yaml:"colors"`
	Name        string   `json:"name" yaml:"name"`
}

// NewHero builds a hero with the given starting health.
func (h HeroInput) NewHero(health int) *entity.Hero {
	return entity.NewHero(h.Mana, h.Description, h.Colors, h.Name, health)
}

// DecksInput holds every deck one player may choose from.
type DecksInput struct {
	NrCardsInDeck int           `json:"nrCardsInDeck" yaml:"nrCardsInDeck"`
	NrDecks       int           `json:"nrDecks" yaml:"nrDecks"`
	Decks         [][]CardInput `json:"decks" yaml:"decks"`
}

// Deck returns fresh cards for the deck at idx.
func (d DecksInput) Deck(idx int) ([]*entity.Card, error) {
	if idx < 0 || idx >= len(d.Decks) {
		return nil, fmt.Errorf("deck index %d out of range [0,%d)", idx, len(d.Decks))
	}
	cards := make([]*entity.Card, 0, len(d.Decks[idx]))
	for _, c := range d.Decks[idx] {
		cards = append(cards, c.NewCard())
	}
	return cards, nil
}

// StartGameInput configures one game.
type StartGameInput struct {
	PlayerOneDeckIdx int       `json:"playerOneDeckIdx" yaml:"playerOneDeckIdx"`
	PlayerTwoDeckIdx int       `json:"playerTwoDeckIdx" yaml:"playerTwoDeckIdx"`
	ShuffleSeed      int64     `json:"shuffleSeed" yaml:"shuffleSeed"`
	PlayerOneHero    HeroInput `json:"playerOneHero" yaml:"playerOneHero"`
	PlayerTwoHero    HeroInput `json:"playerTwoHero" yaml:"playerTwoHero"`
	StartingPlayer   int       `json:"startingPlayer" yaml:"startingPlayer"`
}

// ActionInput is one command of a game.
type ActionInput struct {
	Command      string       `json:"command" yaml:"command"`
	HandIdx      int          `json:"handIdx" yaml:"handIdx"`
	CardAttacker entity.Coord `json:"cardAttacker" yaml:"cardAttacker"`
	CardAttacked entity.Coord `json:"cardAttacked" yaml:"cardAttacked"`
	AffectedRow  int          `json:"affectedRow" yaml:"affectedRow"`
	PlayerIdx    int          `json:"playerIdx" yaml:"playerIdx"`
	X            int          `json:"x" yaml:"x"`
	Y            int          `json:"y" yaml:"y"`
}

// Action converts the input into an engine command.
func (a ActionInput) Action() game.Action {
	return game.Action{
		Command:      a.Command,
		HandIdx:      a.HandIdx,
		CardAttacker: a.CardAttacker,
		CardAttacked: a.CardAttacked,
		AffectedRow:  a.AffectedRow,
		PlayerIdx:    a.PlayerIdx,
		X:            a.X,
		Y:            a.Y,
	}
}

// GameInput is one game of a session.
type GameInput struct {
	StartGame StartGameInput `json:"startGame" yaml:"startGame"`
	Actions   []ActionInput  `json:"actions" yaml:"actions"`
}

// Input is a whole session document.
type Input struct {
	PlayerOneDecks DecksInput  `json:"playerOneDecks" yaml:"playerOneDecks"`
	PlayerTwoDecks DecksInput  `json:"playerTwoDecks" yaml:"playerTwoDecks"`
	Games          []GameInput `json:"games" yaml:"games"`
}

// Validate checks the references between games and decks.
func (in *Input) Validate() error {
	for i, g := range in.Games {
		s := g.StartGame
		if s.PlayerOneDeckIdx < 0 || s.PlayerOneDeckIdx >= len(in.PlayerOneDecks.Decks) {
			return fmt.Errorf("game %d: player one deck index %d out of range", i, s.PlayerOneDeckIdx)
		}
		if s.PlayerTwoDeckIdx < 0 || s.PlayerTwoDeckIdx >= len(in.PlayerTwoDecks.Decks) {
			return fmt.Errorf("game %d: player two deck index %d out of range", i, s.PlayerTwoDeckIdx)
		}
		if s.StartingPlayer != 1 && s.StartingPlayer != 2 {
			return fmt.Errorf("game %d: starting player must be 1 or 2, got %d", i, s.StartingPlayer)
		}
	}
	return nil
}

// Setup builds the engine setup for game idx with fresh card copies.
func (in *Input) Setup(idx int, heroHealth int) (game.Setup, error) {
	if idx < 0 || idx >= len(in.Games) {
		return game.Setup{}, fmt.Errorf("game index %d out of range", idx)
	}
	s := in.Games[idx].StartGame

	one, err := in.PlayerOneDecks.Deck(s.PlayerOneDeckIdx)
	if err != nil {
		return game.Setup{}, fmt.Errorf("player one: %w", err)
	}
	two, err := in.PlayerTwoDecks.Deck(s.PlayerTwoDeckIdx)
	if err != nil {
		return game.Setup{}, fmt.Errorf("player two: %w", err)
	}

	return game.Setup{
		PlayerOneDeck:  one,
		PlayerTwoDeck:  two,
		PlayerOneHero:  s.PlayerOneHero.NewHero(heroHealth),
		PlayerTwoHero:  s.PlayerTwoHero.NewHero(heroHealth),
		ShuffleSeed:    s.ShuffleSeed,
		StartingPlayer: s.StartingPlayer,
	}, nil
}
