package game

import (
	"github.com/magefree/duel-server-go/internal/game/catalog"
	"github.com/magefree/duel-server-go/internal/game/entity"
	"github.com/magefree/duel-server-go/internal/game/rules"
)

// cardUsesAbility resolves a minion's special ability against another minion.
// Using an ability consumes the minion's attack for the round.
func (g *Game) cardUsesAbility(actor *entity.Player, action Action) []Result {
	caster, ok := g.board.CardAt(action.CardAttacker)
	if !ok {
		return nil
	}
	target, ok := g.board.CardAt(action.CardAttacked)
	if !ok {
		return nil
	}

	minion, _ := caster.Minion()
	if err := g.validateAbility(actor, caster, minion.Ability, target, action.CardAttacked); err != nil {
		return attackRejected(action, err)
	}

	switch minion.Ability {
	case catalog.AbilityGodsPlan:
		target.Health += 2
	case catalog.AbilityWeakKnife:
		target.AttackDamage = max(0, target.AttackDamage-2)
	case catalog.AbilitySkyjack:
		caster.Health, target.Health = target.Health, caster.Health
	case catalog.AbilityShapeshift:
		if target.AttackDamage == 0 {
			g.eliminate(actor, action.CardAttacked)
		} else {
			target.Health, target.AttackDamage = target.AttackDamage, target.Health
		}
	default:
		return nil
	}
	caster.HasAttacked = true

	evt := rules.NewEvent(rules.EventAbilityUsed, seatOf(actor), caster.Name, target.Name)
	evt.Row, evt.Col = action.CardAttacked.X, action.CardAttacked.Y
	evt.Data = minion.Ability.String()
	g.events.Publish(evt)
	return nil
}

func (g *Game) validateAbility(actor *entity.Player, caster *entity.Card, ability catalog.Ability, target *entity.Card, at entity.Coord) error {
	if caster.Frozen {
		return ErrAttackerFrozen
	}
	if caster.HasAttacked {
		return ErrAttackerAttacked
	}
	if ability.TargetsAlly() {
		if !actor.OwnsRow(at.X) {
			return ErrTargetNotAlly
		}
		return nil
	}
	if actor.OwnsRow(at.X) {
		return ErrTargetNotEnemy
	}
	return g.checkTaunt(actor, target)
}

// useHeroAbility applies the actor's hero power to a whole row.
func (g *Game) useHeroAbility(actor *entity.Player, action Action) []Result {
	hero := actor.Hero
	info, ok := hero.Ability()
	if !ok {
		return nil
	}

	var err error
	switch {
	case !actor.Mana.CanPay(hero.Mana):
		err = ErrHeroNotEnoughMana
	case hero.HasAttacked:
		err = ErrHeroAttacked
	case info.Ability.TargetsEnemy() && actor.OwnsRow(action.AffectedRow):
		err = ErrRowNotEnemy
	case !info.Ability.TargetsEnemy() && !actor.OwnsRow(action.AffectedRow):
		err = ErrRowNotCurrentPlayer
	}
	if err != nil {
		return []Result{{
			Command:     action.Command,
			AffectedRow: intPtr(action.AffectedRow),
			Error:       err.Error(),
		}}
	}

	row := action.AffectedRow
	switch info.Ability {
	case catalog.HeroAbilitySubZero:
		g.board.EachInRow(row, func(_ entity.Coord, card *entity.Card) {
			card.Frozen = true
		})
	case catalog.HeroAbilityLowBlow:
		if at, found := g.healthiestInRow(row); found {
			g.eliminate(actor, at)
		}
	case catalog.HeroAbilityBloodThirst:
		g.board.EachInRow(row, func(_ entity.Coord, card *entity.Card) {
			card.AttackDamage++
		})
	case catalog.HeroAbilityEarthBorn:
		g.board.EachInRow(row, func(_ entity.Coord, card *entity.Card) {
			card.Health++
		})
	}

	actor.Mana.Spend(hero.Mana)
	hero.HasAttacked = true

	evt := rules.NewEvent(rules.EventHeroAbilityUsed, seatOf(actor), hero.Name, "")
	evt.Row, evt.Amount = row, hero.Mana
	evt.Data = info.Ability.String()
	g.events.Publish(evt)
	return nil
}

// healthiestInRow returns the leftmost card with the highest health in row.
func (g *Game) healthiestInRow(row int) (entity.Coord, bool) {
	var best entity.Coord
	bestHealth, found := 0, false
	g.board.EachInRow(row, func(at entity.Coord, card *entity.Card) {
		if !found || card.Health > bestHealth {
			best, bestHealth, found = at, card.Health, true
		}
	})
	return best, found
}
