package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/magefree/duel-server-go/internal/game/entity"
)

func testCard(name string, mana, attack, health int) *entity.Card {
	return entity.NewCard(mana, attack, health, name+" card", []string{"Red", "Blue"}, name)
}

func testHero(name string, mana int) *entity.Hero {
	return entity.NewHero(mana, name+" hero", []string{"White"}, name, 0)
}

func fillerDeck(n int) []*entity.Card {
	deck := make([]*entity.Card, 0, n)
	for i := 0; i < n; i++ {
		deck = append(deck, testCard("Sentinel", 2, 4, 4))
	}
	return deck
}

type gameOption func(*Setup)

func withHeroes(one, two string) gameOption {
	return func(s *Setup) {
		s.PlayerOneHero = testHero(one, 2)
		s.PlayerTwoHero = testHero(two, 2)
	}
}

func withDecks(one, two []*entity.Card) gameOption {
	return func(s *Setup) {
		s.PlayerOneDeck = one
		s.PlayerTwoDeck = two
	}
}

func withStartingPlayer(idx int) gameOption {
	return func(s *Setup) {
		s.StartingPlayer = idx
	}
}

// newTestGame creates a game with filler decks, player one to act.
func newTestGame(t *testing.T, scores *Scoreboard, opts ...gameOption) *Game {
	t.Helper()
	setup := Setup{
		PlayerOneDeck:  fillerDeck(5),
		PlayerTwoDeck:  fillerDeck(5),
		PlayerOneHero:  testHero("Lord Royce", 2),
		PlayerTwoHero:  testHero("King Mudface", 2),
		ShuffleSeed:    12345,
		StartingPlayer: 1,
	}
	for _, opt := range opts {
		opt(&setup)
	}
	return NewGame(zaptest.NewLogger(t), "test-game", setup, scores, DefaultRules())
}

// put places card directly on row and returns its coordinate.
func put(t *testing.T, g *Game, row int, card *entity.Card) entity.Coord {
	t.Helper()
	col, ok := g.Board().Place(row, card)
	require.True(t, ok, "row %d is full", row)
	return entity.Coord{X: row, Y: col}
}

func attack(from, to entity.Coord) Action {
	return Action{Command: CommandCardUsesAttack, CardAttacker: from, CardAttacked: to}
}

func ability(from, to entity.Coord) Action {
	return Action{Command: CommandCardUsesAbility, CardAttacker: from, CardAttacked: to}
}

func heroAbility(row int) Action {
	return Action{Command: CommandUseHeroAbility, AffectedRow: row}
}

func endTurn() Action {
	return Action{Command: CommandEndPlayerTurn}
}

func requireSingleError(t *testing.T, results []Result, want error) Result {
	t.Helper()
	require.Len(t, results, 1)
	require.Equal(t, want.Error(), results[0].Error)
	return results[0]
}
