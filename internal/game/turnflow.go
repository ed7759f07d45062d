package game

import (
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/mana"
	"github.com/magefree/duel-server-go/internal/game/rules"
)

// endTurn passes the turn. Every second turn a new round starts: attack flags
// reset, both players gain mana and draw. The ending player's minions thaw.
func (g *Game) endTurn() {
	end := g.turns.EndTurn()
	ended := g.player(end.Ended)
	next := g.player(end.Next)

	evt := rules.NewEvent(rules.EventTurnEnded, end.Ended, "", "")
	evt.Amount = g.turns.TurnCount()
	g.events.Publish(evt)

	if end.RoundStarted {
		g.startRound(end.Round)
	}

	ended.Turn = false
	next.Turn = true

	for _, row := range ended.Rows() {
		g.board.EachInRow(row, func(_ entity.Coord, card *entity.Card) {
			card.Frozen = false
		})
	}
}

func (g *Game) startRound(round int) {
	g.board.Each(func(_ entity.Coord, card *entity.Card) {
		card.HasAttacked = false
	})

	grant := mana.RoundGrant(round, g.rules.MaxManaGrant)
	for _, p := range g.players {
		p.Hero.HasAttacked = false
		p.Mana.Add(grant)

		evt := rules.NewEvent(rules.EventManaGranted, seatOf(p), "", "")
		evt.Amount = grant
		g.events.Publish(evt)

		if p.DrawCard() {
			g.events.Publish(rules.NewEvent(rules.EventCardDrawn, seatOf(p), "", ""))
		}
	}

	evt := rules.NewEvent(rules.EventRoundStarted, g.turns.ActivePlayer(), "", "")
	evt.Amount = round
	g.events.Publish(evt)

	g.logger.Debug("round started",
		zap.String("game_id", g.id),
		zap.Int("round", round),
		zap.Int("mana_grant", grant),
	)
}
