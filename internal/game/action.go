package game

import "github.com/magefree/duel-server-go/internal/game/entity"

// Command names accepted by Game.Apply.
const (
	CommandPlaceCard       = "placeCard"
	CommandCardUsesAttack  = "cardUsesAttack"
	CommandCardUsesAbility = "cardUsesAbility"
	CommandUseAttackHero   = "useAttackHero"
	CommandUseHeroAbility  = "useHeroAbility"
	CommandEndPlayerTurn   = "endPlayerTurn"

	CommandGetPlayerDeck         = "getPlayerDeck"
	CommandGetPlayerHero         = "getPlayerHero"
	CommandGetCardsInHand        = "getCardsInHand"
	CommandGetPlayerMana         = "getPlayerMana"
	CommandGetCardsOnTable       = "getCardsOnTable"
	CommandGetFrozenCardsOnTable = "getFrozenCardsOnTable"
	CommandGetCardAtPosition     = "getCardAtPosition"
	CommandGetPlayerTurn         = "getPlayerTurn"
	CommandGetTotalGamesPlayed   = "getTotalGamesPlayed"
	CommandGetPlayerOneWins      = "getPlayerOneWins"
	CommandGetPlayerTwoWins      = "getPlayerTwoWins"
)

// Action is one externally supplied command. Only the fields the command
// needs are read.
type Action struct {
	Command      string
	HandIdx      int
	CardAttacker entity.Coord
	CardAttacked entity.Coord
	AffectedRow  int
	// PlayerIdx selects the acting player explicitly; 0 means the turn holder.
	PlayerIdx int
	X         int
	Y         int
}
