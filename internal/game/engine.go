package game

import (
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/mana"
	"github.com/magefree/duel-server-go/internal/game/rules"
)

// Rules holds the tunable numbers of a game.
type Rules struct {
	HeroHealth   int
	StartingMana int
	MaxManaGrant int
}

// DefaultRules returns the standard rule numbers.
func DefaultRules() Rules {
	return Rules{
		HeroHealth:   entity.DefaultHeroHealth,
		StartingMana: 1,
		MaxManaGrant: mana.DefaultMaxGrant,
	}
}

func (r Rules) normalized() Rules {
	def := DefaultRules()
	if r.HeroHealth <= 0 {
		r.HeroHealth = def.HeroHealth
	}
	if r.StartingMana < 0 {
		r.StartingMana = def.StartingMana
	}
	if r.MaxManaGrant <= 0 {
		r.MaxManaGrant = def.MaxManaGrant
	}
	return r
}

// Setup describes how a game starts. Decks are consumed by the game, so
// callers pass fresh card copies for every game.
type Setup struct {
	PlayerOneDeck  []*entity.Card
	PlayerTwoDeck  []*entity.Card
	PlayerOneHero  *entity.Hero
	PlayerTwoHero  *entity.Hero
	ShuffleSeed    int64
	StartingPlayer int
}

// Game is one duel between two players. It is driven by Apply and is not
// safe for concurrent use.
type Game struct {
	id      string
	logger  *zap.Logger
	rules   Rules
	board   *entity.Board
	players [2]*entity.Player
	turns   *rules.TurnManager
	scores  *Scoreboard
	events  *rules.EventBus
	winner  rules.Seat
	applied int
}

// NewGame shuffles both decks with the setup seed, deals each player the top
// card and hands the first turn to the starting player.
func NewGame(logger *zap.Logger, id string, setup Setup, scores *Scoreboard, cfg Rules) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scores == nil {
		scores = NewScoreboard()
	}
	cfg = cfg.normalized()

	g := &Game{
		id:     id,
		logger: logger,
		rules:  cfg,
		board:  entity.NewBoard(),
		scores: scores,
		events: rules.NewEventBus(),
	}

	decks := [2][]*entity.Card{setup.PlayerOneDeck, setup.PlayerTwoDeck}
	heroes := [2]*entity.Hero{setup.PlayerOneHero, setup.PlayerTwoHero}
	for i := range g.players {
		deck := entity.NewDeck(decks[i])
		deck.Shuffle(setup.ShuffleSeed)

		hero := heroes[i]
		if hero == nil {
			hero = entity.NewHero(0, "", nil, "", cfg.HeroHealth)
		}
		hero.Health = cfg.HeroHealth
		hero.HasAttacked = false
		hero.Dead = false

		p := entity.NewPlayer(i+1, deck, hero, cfg.StartingMana)
		p.DrawCard()
		g.players[i] = p
	}

	start := rules.Seat(setup.StartingPlayer)
	g.turns = rules.NewTurnManager(start)
	g.player(g.turns.ActivePlayer()).Turn = true

	g.logger.Debug("game started",
		zap.String("game_id", id),
		zap.Int64("shuffle_seed", setup.ShuffleSeed),
		zap.String("starting_player", g.turns.ActivePlayer().String()),
	)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Events returns the bus that receives every state change of the game.
func (g *Game) Events() *rules.EventBus {
	return g.events
}

// Board returns the shared battlefield.
func (g *Game) Board() *entity.Board {
	return g.board
}

// Player returns player one or two. Any other index yields nil.
func (g *Game) Player(idx int) *entity.Player {
	if idx != 1 && idx != 2 {
		return nil
	}
	return g.players[idx-1]
}

// ActivePlayer returns the seat holding the turn.
func (g *Game) ActivePlayer() rules.Seat {
	return g.turns.ActivePlayer()
}

// Round returns the current round number, starting at 1.
func (g *Game) Round() int {
	return g.turns.Round()
}

// TurnCount returns the number of turns ended so far.
func (g *Game) TurnCount() int {
	return g.turns.TurnCount()
}

// Winner returns the seat that killed the enemy hero most recently, or 0.
func (g *Game) Winner() rules.Seat {
	return g.winner
}

// ActionsApplied returns how many commands the game has processed.
func (g *Game) ActionsApplied() int {
	return g.applied
}

func (g *Game) player(seat rules.Seat) *entity.Player {
	return g.players[int(seat)-1]
}

func (g *Game) opponentOf(p *entity.Player) *entity.Player {
	if p.Index == 1 {
		return g.players[1]
	}
	return g.players[0]
}

func seatOf(p *entity.Player) rules.Seat {
	return rules.Seat(p.Index)
}

// Start publishes the game start. Listeners subscribed through Events before
// Start observe the full event stream.
func (g *Game) Start() {
	evt := rules.NewEvent(rules.EventGameStarted, g.turns.ActivePlayer(), g.players[0].Hero.Name, g.players[1].Hero.Name)
	g.events.Publish(evt)
}

// Apply executes one command and returns the records it produced, followed
// by a game-ended record when a hero died.
func (g *Game) Apply(action Action) []Result {
	g.applied++

	var results []Result
	switch action.Command {
	case CommandEndPlayerTurn:
		g.endTurn()
	case CommandGetTotalGamesPlayed:
		results = append(results, Result{Command: action.Command, Output: g.scores.GamesPlayed()})
	case CommandGetPlayerOneWins:
		results = append(results, Result{Command: action.Command, Output: g.scores.Wins(rules.SeatPlayerOne)})
	case CommandGetPlayerTwoWins:
		results = append(results, Result{Command: action.Command, Output: g.scores.Wins(rules.SeatPlayerTwo)})
	default:
		results = append(results, g.execute(g.actor(action), action)...)
	}

	for _, r := range results {
		if r.Failed() {
			g.reject(action, r.Error)
		}
	}

	if ended, ok := g.checkHeroes(); ok {
		results = append(results, ended)
	}
	return results
}

// actor resolves the player a command acts for. An explicit player index
// wins, otherwise the turn holder acts.
func (g *Game) actor(action Action) *entity.Player {
	if p := g.Player(action.PlayerIdx); p != nil {
		return p
	}
	return g.player(g.turns.ActivePlayer())
}

func (g *Game) execute(actor *entity.Player, action Action) []Result {
	switch action.Command {
	case CommandPlaceCard:
		return g.placeCard(actor, action)
	case CommandCardUsesAttack:
		return g.cardUsesAttack(actor, action)
	case CommandCardUsesAbility:
		return g.cardUsesAbility(actor, action)
	case CommandUseAttackHero:
		return g.useAttackHero(actor, action)
	case CommandUseHeroAbility:
		return g.useHeroAbility(actor, action)
	case CommandGetPlayerDeck:
		return g.getPlayerDeck(actor, action)
	case CommandGetPlayerHero:
		return g.getPlayerHero(actor, action)
	case CommandGetCardsInHand:
		return g.getCardsInHand(actor, action)
	case CommandGetPlayerMana:
		return g.getPlayerMana(actor, action)
	case CommandGetCardsOnTable:
		return g.getCardsOnTable(action)
	case CommandGetFrozenCardsOnTable:
		return g.getFrozenCardsOnTable(action)
	case CommandGetCardAtPosition:
		return g.getCardAtPosition(action)
	case CommandGetPlayerTurn:
		return g.getPlayerTurn(action)
	default:
		g.logger.Debug("ignoring unknown command",
			zap.String("game_id", g.id),
			zap.String("command", action.Command),
		)
		return nil
	}
}

func (g *Game) reject(action Action, reason string) {
	g.logger.Debug("action rejected",
		zap.String("game_id", g.id),
		zap.String("command", action.Command),
		zap.String("reason", reason),
	)
	evt := rules.NewEvent(rules.EventActionRejected, g.turns.ActivePlayer(), "", "")
	evt.Command = action.Command
	evt.Data = reason
	g.events.Publish(evt)
}

// checkHeroes credits a win when a hero has died. Player one's hero is
// checked first; the dead flag is cleared once the win is recorded.
func (g *Game) checkHeroes() (Result, bool) {
	one, two := g.players[0].Hero, g.players[1].Hero

	var winner rules.Seat
	var message string
	var loser *entity.Hero
	switch {
	case one.Dead:
		winner, message, loser = rules.SeatPlayerTwo, playerTwoKilledHeroMsg, one
	case two.Dead:
		winner, message, loser = rules.SeatPlayerOne, playerOneKilledHeroMsg, two
	default:
		return Result{}, false
	}

	loser.Dead = false
	g.winner = winner
	g.scores.RecordWin(winner)

	g.events.Publish(rules.NewEvent(rules.EventHeroKilled, winner, "", loser.Name))
	g.logger.Info("hero killed",
		zap.String("game_id", g.id),
		zap.String("winner", winner.String()),
		zap.String("hero", loser.Name),
	)
	return Result{GameEnded: message}, true
}
