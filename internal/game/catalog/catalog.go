package catalog

import (
	"fmt"
	"sort"
)

// Row is the board row a minion is placed on.
type Row int

const (
	RowFront Row = iota
	RowBack
)

func (r Row) String() string {
	switch r {
	case RowFront:
		return "FRONT"
	case RowBack:
		return "BACK"
	default:
		return fmt.Sprintf("ROW_%d", int(r))
	}
}

// Ability identifies the special action a minion can perform.
type Ability int

const (
	AbilityNone Ability = iota
	// AbilityGodsPlan heals an allied minion.
	AbilityGodsPlan
	// AbilityWeakKnife lowers an enemy minion's attack.
	AbilityWeakKnife
	// AbilitySkyjack swaps health with an enemy minion.
	AbilitySkyjack
	// AbilityShapeshift swaps an enemy minion's health and attack.
	AbilityShapeshift
)

var abilityNames = map[Ability]string{
	AbilityNone:       "NONE",
	AbilityGodsPlan:   "GODS_PLAN",
	AbilityWeakKnife:  "WEAK_KNIFE",
	AbilitySkyjack:    "SKYJACK",
	AbilityShapeshift: "SHAPESHIFT",
}

func (a Ability) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ABILITY_%d", int(a))
}

// TargetsAlly reports whether the ability must be aimed at the caster's own rows.
// Ally-targeted abilities are also exempt from the taunt rule.
func (a Ability) TargetsAlly() bool {
	return a == AbilityGodsPlan
}

// HeroAbility identifies a hero's row-wide power.
type HeroAbility int

const (
	HeroAbilityNone HeroAbility = iota
	// HeroAbilitySubZero freezes every minion in an enemy row.
	HeroAbilitySubZero
	// HeroAbilityLowBlow destroys the healthiest minion in an enemy row.
	HeroAbilityLowBlow
	// HeroAbilityBloodThirst gives +1 attack to every minion in an own row.
	HeroAbilityBloodThirst
	// HeroAbilityEarthBorn gives +1 health to every minion in an own row.
	HeroAbilityEarthBorn
)

var heroAbilityNames = map[HeroAbility]string{
	HeroAbilityNone:        "NONE",
	HeroAbilitySubZero:     "SUB_ZERO",
	HeroAbilityLowBlow:     "LOW_BLOW",
	HeroAbilityBloodThirst: "BLOOD_THIRST",
	HeroAbilityEarthBorn:   "EARTH_BORN",
}

func (h HeroAbility) String() string {
	if name, ok := heroAbilityNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HERO_ABILITY_%d", int(h))
}

// TargetsEnemy reports whether the hero ability must be aimed at an enemy row.
func (h HeroAbility) TargetsEnemy() bool {
	return h == HeroAbilitySubZero || h == HeroAbilityLowBlow
}

// Minion describes the fixed properties of a minion identity.
type Minion struct {
	Name    string
	Row     Row
	Ability Ability
	Taunt   bool
}

// Hero describes the fixed properties of a hero identity.
type Hero struct {
	Name    string
	Ability HeroAbility
}

var minions = map[string]Minion{
	"Sentinel":       {Name: "Sentinel", Row: RowBack},
	"Berserker":      {Name: "Berserker", Row: RowBack},
	"Goliath":        {Name: "Goliath", Row: RowFront, Taunt: true},
	"Warden":         {Name: "Warden", Row: RowFront, Taunt: true},
	"Disciple":       {Name: "Disciple", Row: RowBack, Ability: AbilityGodsPlan},
	"The Ripper":     {Name: "The Ripper", Row: RowFront, Ability: AbilityWeakKnife},
	"Miraj":          {Name: "Miraj", Row: RowFront, Ability: AbilitySkyjack},
	"The Cursed One": {Name: "The Cursed One", Row: RowBack, Ability: AbilityShapeshift},
}

var heroes = map[string]Hero{
	"Lord Royce":       {Name: "Lord Royce", Ability: HeroAbilitySubZero},
	"Empress Thorina":  {Name: "Empress Thorina", Ability: HeroAbilityLowBlow},
	"General Kocioraw": {Name: "General Kocioraw", Ability: HeroAbilityBloodThirst},
	"King Mudface":     {Name: "King Mudface", Ability: HeroAbilityEarthBorn},
}

// LookupMinion returns the catalog entry for a minion name.
func LookupMinion(name string) (Minion, bool) {
	m, ok := minions[name]
	return m, ok
}

// LookupHero returns the catalog entry for a hero name.
func LookupHero(name string) (Hero, bool) {
	h, ok := heroes[name]
	return h, ok
}

// IsTaunt reports whether the named minion forces attacks onto itself.
// Names missing from the catalog are never taunts.
func IsTaunt(name string) bool {
	return minions[name].Taunt
}

// MinionNames returns every known minion name, sorted.
func MinionNames() []string {
	return sortedKeys(minions)
}

// HeroNames returns every known hero name, sorted.
func HeroNames() []string {
	return sortedKeys(heroes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
