// Package session plays every game of an input document in order, carrying
// the win counters from one game to the next.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/fileio"
	"github.com/magefree/duel-server-go/internal/game"
	"github.com/magefree/duel-server-go/internal/game/rules"
	"github.com/magefree/duel-server-go/internal/repository"
)

// Summary describes one finished game of the session.
type Summary struct {
	GameID       string
	Index        int
	Winner       rules.Seat
	Actions      int
	Eliminations int
	Rejections   int
	Checksum     string
}

// Option configures a Session.
type Option func(*Session)

// WithRules overrides the rule numbers used for every game.
func WithRules(r game.Rules) Option {
	return func(s *Session) {
		s.rules = r
	}
}

// WithReplayRecorder records and saves a replay for each game.
func WithReplayRecorder(rec *game.ReplayRecorder) Option {
	return func(s *Session) {
		s.recorder = rec
	}
}

// WithHistoryStore writes a history row after each game.
func WithHistoryStore(store repository.HistoryStore) Option {
	return func(s *Session) {
		s.history = store
	}
}

// Session owns the scoreboard shared by its games.
type Session struct {
	id       string
	logger   *zap.Logger
	rules    game.Rules
	scores   *game.Scoreboard
	recorder *game.ReplayRecorder
	history  repository.HistoryStore

	mu        sync.Mutex
	summaries []Summary
}

// New creates a session with a fresh scoreboard.
func New(logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		id:     uuid.NewString(),
		logger: logger,
		rules:  game.DefaultRules(),
		scores: game.NewScoreboard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Scores returns the session scoreboard.
func (s *Session) Scores() *game.Scoreboard {
	return s.scores
}

// Summaries returns the finished games in play order.
func (s *Session) Summaries() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Summary(nil), s.summaries...)
}

// Run plays every game and returns all output records in order.
func (s *Session) Run(ctx context.Context, in *fileio.Input) ([]game.Result, error) {
	results := make([]game.Result, 0)
	err := s.Stream(ctx, in, func(r game.Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Stream plays every game and hands each output record to emit as soon as
// it is produced. It stops at the first emit error or context cancellation.
func (s *Session) Stream(ctx context.Context, in *fileio.Input, emit func(game.Result) error) error {
	if in == nil {
		return fmt.Errorf("session input is nil")
	}
	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.Int("games", len(in.Games)),
	)
	for idx := range in.Games {
		summary, err := s.playGame(ctx, in, idx, emit)
		if err != nil {
			return fmt.Errorf("game %d: %w", idx, err)
		}
		s.mu.Lock()
		s.summaries = append(s.summaries, summary)
		s.mu.Unlock()
	}
	s.logger.Info("session finished",
		zap.String("session_id", s.id),
		zap.Int("player_one_wins", s.scores.Wins(rules.SeatPlayerOne)),
		zap.Int("player_two_wins", s.scores.Wins(rules.SeatPlayerTwo)),
	)
	return nil
}

func (s *Session) playGame(ctx context.Context, in *fileio.Input, idx int, emit func(game.Result) error) (Summary, error) {
	setup, err := in.Setup(idx, s.rules.HeroHealth)
	if err != nil {
		return Summary{}, err
	}

	gameID := uuid.NewString()
	g := game.NewGame(s.logger, gameID, setup, s.scores, s.rules)
	summary := Summary{GameID: gameID, Index: idx}

	g.Events().SubscribeTyped(rules.EventCardEliminated, func(rules.Event) {
		summary.Eliminations++
	})
	g.Events().SubscribeTyped(rules.EventActionRejected, func(rules.Event) {
		summary.Rejections++
	})

	if s.recorder != nil {
		s.recorder.StartRecording(gameID)
	}
	g.Start()

	for _, action := range in.Games[idx].Actions {
		if err := ctx.Err(); err != nil {
			if s.recorder != nil {
				s.recorder.ClearReplay(gameID)
			}
			return Summary{}, err
		}
		results := g.Apply(action.Action())
		if s.recorder != nil {
			s.recorder.Record(gameID, results...)
		}
		for _, r := range results {
			if err := emit(r); err != nil {
				if s.recorder != nil {
					s.recorder.ClearReplay(gameID)
				}
				return Summary{}, fmt.Errorf("failed to emit result: %w", err)
			}
		}
	}

	summary.Winner = g.Winner()
	summary.Actions = g.ActionsApplied()
	summary.Checksum = g.Checksum()

	s.finishGame(ctx, g, summary)
	return summary, nil
}

// finishGame persists the replay and history row. Failures are logged and do
// not abort the session.
func (s *Session) finishGame(ctx context.Context, g *game.Game, summary Summary) {
	if s.recorder != nil {
		if err := s.recorder.SaveReplay(summary.GameID); err != nil {
			s.logger.Warn("failed to save replay",
				zap.String("game_id", summary.GameID),
				zap.Error(err),
			)
		}
	}

	if s.history != nil {
		rec := repository.GameRecord{
			GameID:          summary.GameID,
			SessionID:       s.id,
			GameIndex:       summary.Index,
			Winner:          int(summary.Winner),
			PlayerOneHero:   g.Player(1).Hero.Name,
			PlayerTwoHero:   g.Player(2).Hero.Name,
			PlayerOneHealth: g.Player(1).Hero.Health,
			PlayerTwoHealth: g.Player(2).Hero.Health,
			Turns:           g.TurnCount(),
			Rounds:          g.Round(),
			Actions:         summary.Actions,
			Eliminations:    summary.Eliminations,
			Checksum:        summary.Checksum,
			PlayedAt:        time.Now().UTC(),
		}
		if err := s.history.RecordGame(ctx, rec); err != nil {
			s.logger.Warn("failed to record game history",
				zap.String("game_id", summary.GameID),
				zap.Error(err),
			)
		}
	}

	s.logger.Debug("game finished",
		zap.String("session_id", s.id),
		zap.String("game_id", summary.GameID),
		zap.Int("index", summary.Index),
		zap.Int("actions", summary.Actions),
		zap.Int("eliminations", summary.Eliminations),
		zap.String("checksum", summary.Checksum),
	)
}
