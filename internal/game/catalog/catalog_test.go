package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMinionRows(t *testing.T) {
	front := []string{"Goliath", "Warden", "The Ripper", "Miraj"}
	back := []string{"Sentinel", "Berserker", "Disciple", "The Cursed One"}

	for _, name := range front {
		m, ok := LookupMinion(name)
		require.True(t, ok, name)
		assert.Equal(t, RowFront, m.Row, name)
	}
	for _, name := range back {
		m, ok := LookupMinion(name)
		require.True(t, ok, name)
		assert.Equal(t, RowBack, m.Row, name)
	}
}

func TestTauntsAreGoliathAndWarden(t *testing.T) {
	for _, name := range MinionNames() {
		want := name == "Goliath" || name == "Warden"
		assert.Equal(t, want, IsTaunt(name), name)
	}
	assert.False(t, IsTaunt("Unknown"))
}

func TestAbilityTargeting(t *testing.T) {
	assert.True(t, AbilityGodsPlan.TargetsAlly())
	assert.False(t, AbilityWeakKnife.TargetsAlly())
	assert.False(t, AbilitySkyjack.TargetsAlly())
	assert.False(t, AbilityShapeshift.TargetsAlly())

	assert.True(t, HeroAbilitySubZero.TargetsEnemy())
	assert.True(t, HeroAbilityLowBlow.TargetsEnemy())
	assert.False(t, HeroAbilityBloodThirst.TargetsEnemy())
	assert.False(t, HeroAbilityEarthBorn.TargetsEnemy())
}

func TestLookupHero(t *testing.T) {
	h, ok := LookupHero("Empress Thorina")
	require.True(t, ok)
	assert.Equal(t, HeroAbilityLowBlow, h.Ability)

	_, ok = LookupHero("Sentinel")
	assert.False(t, ok)
	assert.Len(t, HeroNames(), 4)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "FRONT", RowFront.String())
	assert.Equal(t, "SKYJACK", AbilitySkyjack.String())
	assert.Equal(t, "ABILITY_42", Ability(42).String())
	assert.Equal(t, "EARTH_BORN", HeroAbilityEarthBorn.String())
}
