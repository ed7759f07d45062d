package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magefree/duel-server-go/internal/game/entity"
)

func TestDeckAndHandQueries(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Apply(Action{Command: CommandGetPlayerDeck, PlayerIdx: 2})
	require.Len(t, res, 1)
	require.NotNil(t, res[0].PlayerIdx)
	assert.Equal(t, 2, *res[0].PlayerIdx)
	deck, ok := res[0].Output.([]CardView)
	require.True(t, ok)
	assert.Len(t, deck, 4)

	res = g.Apply(Action{Command: CommandGetCardsInHand, PlayerIdx: 1})
	require.Len(t, res, 1)
	hand, ok := res[0].Output.([]CardView)
	require.True(t, ok)
	require.Len(t, hand, 1)
	assert.Equal(t, CardView{
		Mana:         2,
		AttackDamage: 4,
		Health:       4,
		Description:  "Sentinel card",
		Colors:       []string{"Red", "Blue"},
		Name:         "Sentinel",
	}, hand[0])
}

func TestHeroAndManaQueries(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Apply(Action{Command: CommandGetPlayerHero, PlayerIdx: 1})
	require.Len(t, res, 1)
	assert.Equal(t, HeroView{
		Mana:        2,
		Description: "Lord Royce hero",
		Colors:      []string{"White"},
		Name:        "Lord Royce",
		Health:      30,
	}, res[0].Output)

	res = g.Apply(Action{Command: CommandGetPlayerMana, PlayerIdx: 2})
	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].Output)
	assert.Equal(t, 2, *res[0].PlayerIdx)
}

func TestTableQueries(t *testing.T) {
	g := newTestGame(t, nil)
	at := put(t, g, 2, testCard("Goliath", 3, 1, 4))
	put(t, g, 2, testCard("Warden", 3, 1, 4))
	put(t, g, 0, testCard("Sentinel", 3, 1, 4))

	res := g.Apply(Action{Command: CommandGetCardsOnTable})
	require.Len(t, res, 1)
	rows, ok := res[0].Output.([][]CardView)
	require.True(t, ok)
	require.Len(t, rows, entity.Rows)
	assert.Len(t, rows[0], 1)
	assert.Empty(t, rows[1])
	assert.Len(t, rows[2], 2)
	assert.Empty(t, rows[3])

	res = g.Apply(Action{Command: CommandGetFrozenCardsOnTable})
	require.Len(t, res, 1)
	assert.Equal(t, []CardView{}, res[0].Output)

	res = g.Apply(Action{Command: CommandGetCardAtPosition, X: at.X, Y: at.Y})
	require.Len(t, res, 1)
	assert.Equal(t, at.X, *res[0].X)
	assert.Equal(t, at.Y, *res[0].Y)
	view, ok := res[0].Output.(CardView)
	require.True(t, ok)
	assert.Equal(t, "Goliath", view.Name)

	res = g.Apply(Action{Command: CommandGetCardAtPosition, X: 3, Y: 4})
	require.Len(t, res, 1)
	assert.Equal(t, noCardAtPositionMessage, res[0].Output)
}

func TestResultEncoding(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Apply(Action{Command: CommandGetPlayerTurn})
	data, err := json.Marshal(res[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"getPlayerTurn","output":1}`, string(data))

	res = g.Apply(Action{Command: CommandGetFrozenCardsOnTable})
	data, err = json.Marshal(res[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"getFrozenCardsOnTable","output":[]}`, string(data))

	res = g.Apply(Action{Command: CommandUseAttackHero, CardAttacker: entity.Coord{X: 2, Y: 0}})
	assert.Empty(t, res)

	a := put(t, g, 2, testCard("Berserker", 0, 1, 1))
	mustCard(t, g, a).Frozen = true
	res = g.Apply(Action{Command: CommandUseAttackHero, CardAttacker: a})
	data, err = json.Marshal(res[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"useAttackHero","cardAttacker":{"x":2,"y":0},"error":"Attacker card is frozen."}`, string(data))

	data, err = json.Marshal(Result{GameEnded: playerTwoKilledHeroMsg})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gameEnded":"Player two killed the enemy hero."}`, string(data))
}
