package game

import "github.com/magefree/duel-server-go/internal/game/entity"

func (g *Game) getPlayerDeck(p *entity.Player, action Action) []Result {
	return []Result{{
		Command:   action.Command,
		PlayerIdx: intPtr(p.Index),
		Output:    newCardViews(p.Deck.Cards()),
	}}
}

func (g *Game) getCardsInHand(p *entity.Player, action Action) []Result {
	return []Result{{
		Command:   action.Command,
		PlayerIdx: intPtr(p.Index),
		Output:    newCardViews(p.Hand.Cards()),
	}}
}

func (g *Game) getPlayerHero(p *entity.Player, action Action) []Result {
	return []Result{{
		Command:   action.Command,
		PlayerIdx: intPtr(p.Index),
		Output:    newHeroView(p.Hero),
	}}
}

func (g *Game) getPlayerMana(p *entity.Player, action Action) []Result {
	return []Result{{
		Command:   action.Command,
		PlayerIdx: intPtr(p.Index),
		Output:    p.Mana.Amount(),
	}}
}

// getCardsOnTable lists every row top to bottom, each with only the cards
// present in it.
func (g *Game) getCardsOnTable(action Action) []Result {
	rows := make([][]CardView, 0, entity.Rows)
	for row := 0; row < entity.Rows; row++ {
		rows = append(rows, newCardViews(g.board.RowCards(row)))
	}
	return []Result{{Command: action.Command, Output: rows}}
}

func (g *Game) getFrozenCardsOnTable(action Action) []Result {
	frozen := make([]CardView, 0)
	g.board.Each(func(_ entity.Coord, card *entity.Card) {
		if card.Frozen {
			frozen = append(frozen, newCardView(card))
		}
	})
	return []Result{{Command: action.Command, Output: frozen}}
}

func (g *Game) getCardAtPosition(action Action) []Result {
	r := Result{
		Command: action.Command,
		X:       intPtr(action.X),
		Y:       intPtr(action.Y),
	}
	if card, ok := g.board.CardAt(entity.Coord{X: action.X, Y: action.Y}); ok {
		r.Output = newCardView(card)
	} else {
		r.Output = noCardAtPositionMessage
	}
	return []Result{r}
}

func (g *Game) getPlayerTurn(action Action) []Result {
	return []Result{{Command: action.Command, Output: int(g.turns.ActivePlayer())}}
}
