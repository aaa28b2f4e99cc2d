package combat

import "fmt"

// Variant selects the attack and special ability rules a Character fights with.
type Variant string

const (
	VariantWarrior Variant = "warrior"
	VariantMage    Variant = "mage"
	VariantRogue   Variant = "rogue"
)

// Action identifies which of a character's moves is being used.
type Action int

const (
	ActionBasicAttack Action = iota
	ActionSpecialAbility
)

// String returns "basic attack", "special ability", or "unknown".
func (a Action) String() string {
	switch a {
	case ActionBasicAttack:
		return "basic attack"
	case ActionSpecialAbility:
		return "special ability"
	default:
		return "unknown"
	}
}

// rules holds the damage formulas and narration for one Variant.
type rules struct {
	// special is the special ability's display name.
	special string
	// specialUse is the infinitive phrase used when the ability is refused, e.g. "use Power Strike".
	specialUse string
	// specialDone is the present-tense phrase used when the ability lands, e.g. "uses Power Strike".
	specialDone   string
	basicDamage   func(str, magic, bonus int) int
	specialDamage func(str, magic, bonus int) int
	basicMessage  func(actor, target, weapon string, damage int) string
}

var variantRules = map[Variant]rules{
	VariantWarrior: {
		special:       "Power Strike",
		specialUse:    "use Power Strike",
		specialDone:   "uses Power Strike",
		basicDamage:   func(str, _, bonus int) int { return str + bonus },
		specialDamage: func(str, _, bonus int) int { return str*2 + bonus },
		basicMessage: func(actor, target, weapon string, damage int) string {
			return fmt.Sprintf("%s slashes %s with %s for %d damage.", actor, target, weapon, damage)
		},
	},
	VariantMage: {
		special:       "Fireball",
		specialUse:    "cast Fireball",
		specialDone:   "casts Fireball",
		basicDamage:   func(_, magic, bonus int) int { return floorDiv(magic, 2) + bonus },
		specialDamage: func(_, magic, bonus int) int { return magic + bonus },
		basicMessage: func(actor, target, weapon string, damage int) string {
			return fmt.Sprintf("%s casts a bolt with %s at %s for %d damage.", actor, weapon, target, damage)
		},
	},
	VariantRogue: {
		special:       "Sneak Attack",
		specialUse:    "use Sneak Attack",
		specialDone:   "uses Sneak Attack",
		basicDamage:   func(str, _, bonus int) int { return str + floorDiv(bonus, 2) },
		specialDamage: func(str, magic, bonus int) int { return str + magic + bonus },
		basicMessage: func(actor, target, _ string, damage int) string {
			return fmt.Sprintf("%s strikes from the shadows and hits %s for %d damage.", actor, target, damage)
		},
	},
}

// Variants returns every supported Variant.
func Variants() []Variant {
	return []Variant{VariantWarrior, VariantMage, VariantRogue}
}

// Valid reports whether v has rules defined.
func (v Variant) Valid() bool {
	_, ok := variantRules[v]
	return ok
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
