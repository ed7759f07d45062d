package game

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/magefree/duel-server-go/internal/game/entity"
)

// ChecksumVersion is bumped whenever the canonical state layout changes.
const ChecksumVersion = 1

// Checksum returns a BLAKE2b-256 digest of the game's canonical state. Two
// games fed the same setup and commands always produce the same checksum.
func (g *Game) Checksum() string {
	sum := blake2b.Sum256([]byte(g.canonicalState()))
	return hex.EncodeToString(sum[:])
}

// canonicalState renders every rule-relevant field in a fixed order. The game
// ID is excluded so replays of the same input compare equal.
func (g *Game) canonicalState() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "V%d|TURN:%d|ROUND:%d|ACTIVE:%d\n",
		ChecksumVersion,
		g.turns.TurnCount(),
		g.turns.Round(),
		g.turns.ActivePlayer(),
	)

	for _, p := range g.players {
		h := p.Hero
		fmt.Fprintf(&buf, "PLAYER:%d|%d|%t\n", p.Index, p.Mana.Amount(), p.Turn)
		fmt.Fprintf(&buf, "HERO:%s|%d|%d|%t\n", h.Name, h.Mana, h.Health, h.HasAttacked)
		fmt.Fprintf(&buf, "HAND:%s\n", cardList(p.Hand.Cards()))
		fmt.Fprintf(&buf, "DECK:%s\n", cardList(p.Deck.Cards()))
	}

	for row := 0; row < entity.Rows; row++ {
		fmt.Fprintf(&buf, "ROW%d:%s\n", row, cardList(g.board.RowCards(row)))
	}
	return buf.String()
}

func cardList(cards []*entity.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, fmt.Sprintf("%s/%d/%d/%d/%t/%t",
			c.Name, c.Mana, c.AttackDamage, c.Health, c.Frozen, c.HasAttacked))
	}
	return strings.Join(parts, ",")
}
