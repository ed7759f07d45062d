package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/magefree/duel-server-go/internal/fileio"
	"github.com/magefree/duel-server-go/internal/game"
	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/rules"
	"github.com/magefree/duel-server-go/internal/repository"
)

func berserkers(n int) []fileio.CardInput {
	cards := make([]fileio.CardInput, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, fileio.CardInput{
			Mana: 1, AttackDamage: 3, Health: 3,
			Description: "charges", Colors: []string{"Red"}, Name: "Berserker",
		})
	}
	return cards
}

func twoGameInput() *fileio.Input {
	hero := func(name string, mana int) fileio.HeroInput {
		return fileio.HeroInput{Mana: mana, Description: name, Colors: []string{"Gold"}, Name: name}
	}
	decks := fileio.DecksInput{NrCardsInDeck: 4, NrDecks: 1, Decks: [][]fileio.CardInput{berserkers(4)}}
	return &fileio.Input{
		PlayerOneDecks: decks,
		PlayerTwoDecks: decks,
		Games: []fileio.GameInput{
			{
				StartGame: fileio.StartGameInput{
					ShuffleSeed:    11,
					PlayerOneHero:  hero("Lord Royce", 2),
					PlayerTwoHero:  hero("King Mudface", 2),
					StartingPlayer: 1,
				},
				Actions: []fileio.ActionInput{
					{Command: game.CommandPlaceCard, HandIdx: 0},
					{Command: game.CommandUseAttackHero, CardAttacker: entity.Coord{X: 3, Y: 0}},
					{Command: game.CommandGetPlayerOneWins},
				},
			},
			{
				StartGame: fileio.StartGameInput{
					ShuffleSeed:    12,
					PlayerOneHero:  hero("Empress Thorina", 5),
					PlayerTwoHero:  hero("General Kocioraw", 2),
					StartingPlayer: 2,
				},
				Actions: []fileio.ActionInput{
					{Command: game.CommandGetTotalGamesPlayed},
					{Command: game.CommandGetPlayerTwoWins},
					{Command: game.CommandEndPlayerTurn},
					{Command: game.CommandUseHeroAbility, AffectedRow: 1},
				},
			},
		},
	}
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithRules(game.Rules{HeroHealth: 3, StartingMana: 1, MaxManaGrant: 10})}, opts...)
	return New(zaptest.NewLogger(t), opts...)
}

func TestRunCarriesWinsAcrossGames(t *testing.T) {
	s := newTestSession(t)

	results, err := s.Run(context.Background(), twoGameInput())
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, "Player one killed the enemy hero.", results[0].GameEnded)
	assert.Equal(t, game.CommandGetPlayerOneWins, results[1].Command)
	assert.Equal(t, 1, results[1].Output)
	assert.Equal(t, 1, results[2].Output)
	assert.Equal(t, 0, results[3].Output)
	assert.Equal(t, game.ErrHeroNotEnoughMana.Error(), results[4].Error)

	summaries := s.Summaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, rules.SeatPlayerOne, summaries[0].Winner)
	assert.Equal(t, rules.Seat(0), summaries[1].Winner)
	assert.Equal(t, 3, summaries[0].Actions)
	assert.Equal(t, 1, summaries[1].Rejections)
	assert.NotEqual(t, summaries[0].GameID, summaries[1].GameID)
	assert.Equal(t, 1, s.Scores().GamesPlayed())
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := newTestSession(t).Run(context.Background(), twoGameInput())
	require.NoError(t, err)

	other := newTestSession(t)
	second, err := other.Run(context.Background(), twoGameInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)

	again := newTestSession(t)
	_, err = again.Run(context.Background(), twoGameInput())
	require.NoError(t, err)
	for i, summary := range other.Summaries() {
		assert.Equal(t, summary.Checksum, again.Summaries()[i].Checksum)
	}
}

func TestRunSavesReplaysAndHistory(t *testing.T) {
	dir := t.TempDir()
	store := repository.NewMemoryStore()
	recorder := game.NewReplayRecorder(zaptest.NewLogger(t), dir)
	s := newTestSession(t, WithReplayRecorder(recorder), WithHistoryStore(store))

	_, err := s.Run(context.Background(), twoGameInput())
	require.NoError(t, err)

	summaries := s.Summaries()
	for _, summary := range summaries {
		_, err := os.Stat(filepath.Join(dir, summary.GameID+".replay"))
		assert.NoError(t, err)
	}

	replay, err := game.LoadReplayFromFile(dir, summaries[0].GameID)
	require.NoError(t, err)
	assert.Equal(t, 2, replay.Size())

	records, err := store.ListGames(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	byIndex := map[int]repository.GameRecord{}
	for _, rec := range records {
		byIndex[rec.GameIndex] = rec
		assert.Equal(t, s.ID(), rec.SessionID)
	}
	assert.Equal(t, 1, byIndex[0].Winner)
	assert.Equal(t, "King Mudface", byIndex[0].PlayerTwoHero)
	assert.Equal(t, 0, byIndex[0].PlayerTwoHealth)
	assert.Equal(t, summaries[1].Checksum, byIndex[1].Checksum)
}

type failingStore struct {
	repository.MemoryStore
}

func (f *failingStore) RecordGame(context.Context, repository.GameRecord) error {
	return errors.New("database unavailable")
}

func TestHistoryFailureDoesNotAbortSession(t *testing.T) {
	s := newTestSession(t, WithHistoryStore(&failingStore{}))

	results, err := s.Run(context.Background(), twoGameInput())
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestStreamStopsOnEmitError(t *testing.T) {
	s := newTestSession(t)
	emitted := 0
	err := s.Stream(context.Background(), twoGameInput(), func(game.Result) error {
		emitted++
		return errors.New("client went away")
	})
	assert.ErrorContains(t, err, "client went away")
	assert.Equal(t, 1, emitted)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSession(t).Run(ctx, twoGameInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsNilInput(t *testing.T) {
	_, err := newTestSession(t).Run(context.Background(), nil)
	assert.Error(t, err)
}
