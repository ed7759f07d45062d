package game

import (
	"github.com/magefree/duel-server-go/internal/game/catalog"
	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/rules"
)

// placeCard moves a card from the actor's hand onto the row its catalog entry
// names. A full row, an unknown card or a bad hand index is ignored.
func (g *Game) placeCard(actor *entity.Player, action Action) []Result {
	card, ok := actor.Hand.At(action.HandIdx)
	if !ok {
		return nil
	}
	if !actor.Mana.CanPay(card.Mana) {
		return []Result{{
			Command: action.Command,
			HandIdx: intPtr(action.HandIdx),
			Error:   ErrPlaceNotEnoughMana.Error(),
		}}
	}

	minion, ok := card.Minion()
	if !ok {
		return nil
	}

	row := actor.FrontRow
	if minion.Row == catalog.RowBack {
		row = actor.BackRow
	}
	col, placed := g.board.Place(row, card)
	if !placed {
		return nil
	}

	actor.Hand.Remove(action.HandIdx)
	actor.Mana.Spend(card.Mana)

	evt := rules.NewEvent(rules.EventCardPlaced, seatOf(actor), card.Name, "")
	evt.Row, evt.Col, evt.Amount = row, col, card.Mana
	g.events.Publish(evt)
	return nil
}
