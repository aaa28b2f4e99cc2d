package combat

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/inventory"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

// Target is anything that can be attacked. Both *Combatant and *Character satisfy it.
type Target interface {
	Describe() string
	IsAlive() bool
	Health() int
	ApplyDamage(amount int) int
}

// Fighter is the polymorphic surface callers use without knowing a character's class.
type Fighter interface {
	Describe() string
	DisplayStats() string
	BasicAttack(target Target) string
	SpecialAbility(target Target) string
	UseSpecialAbility(target Target) string
}

// Outcome describes the result of resolving one action.
type Outcome struct {
	Action Action
	Actor  string
	Target string
	// Applied is false when the action was refused and no damage was dealt.
	Applied      bool
	Damage       int
	TargetHealth int
	Message      string
}

// Character is a Combatant of a particular class, carrying one weapon.
type Character struct {
	*Combatant
	class   string
	variant Variant
	weapon  inventory.Equipment
	// mana is nil for classes without a mana pool.
	mana *Mana
}

// NewCharacter builds a character named name from class, equipping the class weapon from weapons.
//
// Precondition: class and weapons must be non-nil.
// Postcondition: Returns a Character at full health, or a non-nil error when the class is
// invalid, its variant has no rules, or its weapon is not registered.
func NewCharacter(name string, class *ruleset.Class, weapons *inventory.Registry) (*Character, error) {
	if err := class.Validate(); err != nil {
		return nil, fmt.Errorf("combat: NewCharacter: %w", err)
	}
	v := Variant(class.Variant)
	if !v.Valid() {
		return nil, fmt.Errorf("combat: NewCharacter: class %q has unknown variant %q", class.ID, class.Variant)
	}
	w, ok := weapons.Weapon(class.Weapon)
	if !ok {
		return nil, fmt.Errorf("combat: NewCharacter: class %q references unknown weapon %q", class.ID, class.Weapon)
	}
	base, err := NewCombatant(name, class.Health, class.Strength, class.Magic)
	if err != nil {
		return nil, fmt.Errorf("combat: NewCharacter: %w", err)
	}
	c := &Character{
		Combatant: base,
		class:     class.Name,
		variant:   v,
		weapon:    w.Equipment(),
	}
	if class.Mana > 0 {
		c.mana = NewMana(class.Mana)
	}
	return c, nil
}

// NewWarrior returns a built-in Warrior wielding an Iron Sword.
func NewWarrior(name string) (*Character, error) {
	return newStandard(name, ruleset.ClassWarrior)
}

// NewMage returns a built-in Mage wielding a Magic Staff with 50 mana.
func NewMage(name string) (*Character, error) {
	return newStandard(name, ruleset.ClassMage)
}

// NewRogue returns a built-in Rogue wielding a Steel Dagger.
func NewRogue(name string) (*Character, error) {
	return newStandard(name, ruleset.ClassRogue)
}

func newStandard(name, classID string) (*Character, error) {
	class, ok := ruleset.StandardClasses().Class(classID)
	if !ok {
		return nil, fmt.Errorf("combat: built-in class %q missing", classID)
	}
	return NewCharacter(name, class, inventory.StandardWeapons())
}

// Class returns the class display name.
func (c *Character) Class() string { return c.class }

// Variant returns the rules the character fights with.
func (c *Character) Variant() Variant { return c.variant }

// Weapon returns the equipped weapon.
func (c *Character) Weapon() inventory.Equipment { return c.weapon }

// Mana returns the character's mana pool, or nil if the class has none.
func (c *Character) Mana() *Mana { return c.mana }

// SpecialName returns the display name of the character's special ability.
func (c *Character) SpecialName() string { return variantRules[c.variant].special }

// RestoreMana refills the character's mana by amount, capped at the pool maximum.
//
// Postcondition: Returns false and changes nothing when the character has no mana pool.
func (c *Character) RestoreMana(amount int) bool {
	if c.mana == nil {
		return false
	}
	c.mana.Restore(amount)
	return true
}

// BasicAttack attacks target with the character's weapon and returns a description.
func (c *Character) BasicAttack(target Target) string {
	return c.Resolve(ActionBasicAttack, target).Message
}

// SpecialAbility uses the class special ability on target and returns a description.
func (c *Character) SpecialAbility(target Target) string {
	return c.Resolve(ActionSpecialAbility, target).Message
}

// UseSpecialAbility is the class-agnostic entry point for SpecialAbility.
func (c *Character) UseSpecialAbility(target Target) string {
	return c.SpecialAbility(target)
}

// Resolve performs action against target.
//
// A defeated character cannot act, and a defeated target cannot be attacked; in both
// cases the returned Outcome has Applied == false and target health is unchanged.
// Postcondition: when Applied, target health has been reduced by Damage (floored at 0).
func (c *Character) Resolve(action Action, target Target) Outcome {
	r := variantRules[c.variant]
	out := Outcome{
		Action:       action,
		Actor:        c.Name,
		Target:       target.Describe(),
		TargetHealth: target.Health(),
	}

	var verb string
	var damage func(str, magic, bonus int) int
	switch action {
	case ActionBasicAttack:
		verb, damage = "attack", r.basicDamage
	case ActionSpecialAbility:
		verb, damage = r.specialUse, r.specialDamage
	default:
		out.Message = fmt.Sprintf("%s does not know how to %s.", c.Name, action)
		return out
	}

	if !c.IsAlive() {
		out.Message = fmt.Sprintf("%s cannot %s because they are down.", c.Name, verb)
		return out
	}
	if !target.IsAlive() {
		out.Message = fmt.Sprintf("%s is already defeated.", out.Target)
		return out
	}

	out.Damage = damage(c.Strength(), c.Magic(), c.weapon.DamageBonus())
	out.TargetHealth = target.ApplyDamage(out.Damage)
	out.Applied = true
	if action == ActionBasicAttack {
		out.Message = r.basicMessage(c.Name, out.Target, c.weapon.Name(), out.Damage)
	} else {
		out.Message = fmt.Sprintf("%s %s on %s for %d damage!", c.Name, r.specialDone, out.Target, out.Damage)
	}
	return out
}

// DisplayStats renders the shared stats followed by class, weapon, and mana when tracked.
func (c *Character) DisplayStats() string {
	base := c.Combatant.DisplayStats()
	if c.mana != nil {
		return fmt.Sprintf("%s [Class: %s, Weapon: %s, Mana: %s]", base, c.class, c.weapon.Name(), c.mana)
	}
	return fmt.Sprintf("%s [Class: %s, Weapon: %s]", base, c.class, c.weapon.Name())
}
