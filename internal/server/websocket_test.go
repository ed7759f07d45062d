package server

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/magefree/duel-server-go/internal/config"
	"github.com/magefree/duel-server-go/internal/fileio"
	"github.com/magefree/duel-server-go/internal/game"
	"github.com/magefree/duel-server-go/internal/session"
)

const sessionInput = `{
  "playerOneDecks": {"nrCardsInDeck": 1, "nrDecks": 1, "decks": [[
    {"mana": 1, "attackDamage": 3, "health": 3, "description": "d", "colors": ["Red"], "name": "Berserker"}
  ]]},
  "playerTwoDecks": {"nrCardsInDeck": 1, "nrDecks": 1, "decks": [[
    {"mana": 1, "attackDamage": 3, "health": 3, "description": "d", "colors": ["Red"], "name": "Goliath"}
  ]]},
  "games": [{
    "startGame": {
      "playerOneDeckIdx": 0, "playerTwoDeckIdx": 0, "shuffleSeed": 3,
      "playerOneHero": {"mana": 2, "description": "h", "colors": ["Blue"], "name": "Lord Royce"},
      "playerTwoHero": {"mana": 2, "description": "h", "colors": ["Blue"], "name": "King Mudface"},
      "startingPlayer": 1
    },
    "actions": [
      {"command": "placeCard", "handIdx": 0},
      {"command": "getCardsOnTable"},
      {"command": "getPlayerMana", "playerIdx": 1}
    ]
  }]
}`

func dialSession(t *testing.T, newRunner RunnerFactory) *websocket.Conn {
	t.Helper()
	handler := NewSessionHandler(config.WebSocketConfig{WriteTimeout: time.Second}, newRunner, zaptest.NewLogger(t))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sessionRunner(t *testing.T) RunnerFactory {
	return func() Runner {
		return session.New(zaptest.NewLogger(t))
	}
}

func TestSessionHandlerStreamsResults(t *testing.T) {
	conn := dialSession(t, sessionRunner(t))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(sessionInput)))

	var table map[string]any
	require.NoError(t, conn.ReadJSON(&table))
	assert.Equal(t, "getCardsOnTable", table["command"])
	rows, ok := table["output"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 4)
	assert.Len(t, rows[3], 1)

	var mana map[string]any
	require.NoError(t, conn.ReadJSON(&mana))
	assert.Equal(t, "getPlayerMana", mana["command"])
	assert.Equal(t, float64(0), mana["output"])

	var status StatusMessage
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, StatusMessage{Status: "done", Results: 2}, status)

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestSessionHandlerRejectsBadInput(t *testing.T) {
	conn := dialSession(t, sessionRunner(t))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))

	var status StatusMessage
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, "error", status.Status)
	assert.Contains(t, status.Error, "decode")
}

type failingRunner struct{}

func (failingRunner) Stream(_ context.Context, _ *fileio.Input, emit func(game.Result) error) error {
	if err := emit(game.Result{Command: game.CommandGetPlayerTurn, Output: 1}); err != nil {
		return err
	}
	return errors.New("engine exploded")
}

func TestSessionHandlerReportsRunnerFailure(t *testing.T) {
	conn := dialSession(t, func() Runner { return failingRunner{} })
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(sessionInput)))

	var first map[string]any
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "getPlayerTurn", first["command"])

	var status StatusMessage
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, StatusMessage{Status: "error", Results: 1, Error: "engine exploded"}, status)
}
