package game

import (
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/rules"
)

func attackRejected(action Action, err error) []Result {
	return []Result{{
		Command:      action.Command,
		CardAttacker: coordPtr(action.CardAttacker),
		CardAttacked: coordPtr(action.CardAttacked),
		Error:        err.Error(),
	}}
}

// cardUsesAttack resolves a minion attacking another minion. Commands naming
// an empty cell do nothing.
func (g *Game) cardUsesAttack(actor *entity.Player, action Action) []Result {
	attacker, ok := g.board.CardAt(action.CardAttacker)
	if !ok {
		return nil
	}
	target, ok := g.board.CardAt(action.CardAttacked)
	if !ok {
		return nil
	}

	if err := g.validateAttack(actor, attacker, target, action.CardAttacked); err != nil {
		return attackRejected(action, err)
	}

	target.Health -= attacker.AttackDamage
	attacker.HasAttacked = true

	evt := rules.NewEvent(rules.EventCardAttacked, seatOf(actor), attacker.Name, target.Name)
	evt.Row, evt.Col, evt.Amount = action.CardAttacked.X, action.CardAttacked.Y, attacker.AttackDamage
	g.events.Publish(evt)

	if target.Health <= 0 {
		g.eliminate(actor, action.CardAttacked)
	}
	return nil
}

func (g *Game) validateAttack(actor *entity.Player, attacker, target *entity.Card, at entity.Coord) error {
	if actor.OwnsRow(at.X) {
		return ErrTargetNotEnemy
	}
	if attacker.HasAttacked {
		return ErrAttackerAttacked
	}
	if attacker.Frozen {
		return ErrAttackerFrozen
	}
	return g.checkTaunt(actor, target)
}

// checkTaunt forbids targeting a non-taunt card while a taunt minion stands in
// the enemy front row.
func (g *Game) checkTaunt(actor *entity.Player, target *entity.Card) error {
	enemy := g.opponentOf(actor)
	if g.board.RowHasTaunt(enemy.FrontRow) && !target.IsTaunt() {
		return ErrTargetNotTank
	}
	return nil
}

// useAttackHero resolves a minion attacking the enemy hero.
func (g *Game) useAttackHero(actor *entity.Player, action Action) []Result {
	attacker, ok := g.board.CardAt(action.CardAttacker)
	if !ok {
		return nil
	}

	enemy := g.opponentOf(actor)
	var err error
	switch {
	case attacker.Frozen:
		err = ErrAttackerFrozen
	case attacker.HasAttacked:
		err = ErrAttackerAttacked
	case g.board.RowHasTaunt(enemy.FrontRow):
		err = ErrTargetNotTank
	}
	if err != nil {
		return []Result{{
			Command:      action.Command,
			CardAttacker: coordPtr(action.CardAttacker),
			Error:        err.Error(),
		}}
	}

	enemy.Hero.TakeDamage(attacker.AttackDamage)
	attacker.HasAttacked = true

	evt := rules.NewEvent(rules.EventHeroAttacked, seatOf(actor), attacker.Name, enemy.Hero.Name)
	evt.Amount = attacker.AttackDamage
	g.events.Publish(evt)
	return nil
}

// eliminate removes the card at c and compacts its row.
func (g *Game) eliminate(actor *entity.Player, c entity.Coord) {
	card, ok := g.board.Eliminate(c)
	if !ok {
		return
	}
	evt := rules.NewEvent(rules.EventCardEliminated, seatOf(actor), "", card.Name)
	evt.Row, evt.Col = c.X, c.Y
	g.events.Publish(evt)

	g.logger.Debug("card eliminated",
		zap.String("game_id", g.id),
		zap.String("card", card.Name),
		zap.Stringer("position", c),
	)
}
