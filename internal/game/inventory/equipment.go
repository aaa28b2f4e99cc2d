package inventory

import "fmt"

// Equipment is a held item granting a flat damage bonus.
//
// Equipment is a value type; its fields cannot be changed after construction.
type Equipment struct {
	name        string
	damageBonus int
}

// NewEquipment returns an Equipment with the given name and bonus.
//
// Postcondition: DamageBonus() >= 0; a negative bonus is clamped to 0.
func NewEquipment(name string, damageBonus int) Equipment {
	if damageBonus < 0 {
		damageBonus = 0
	}
	return Equipment{name: name, damageBonus: damageBonus}
}

// Name returns the item's display name.
func (e Equipment) Name() string { return e.name }

// DamageBonus returns the flat damage added by the item.
func (e Equipment) DamageBonus() int { return e.damageBonus }

// Describe returns the name and bonus, e.g. "Iron Sword (+10 dmg)".
func (e Equipment) Describe() string {
	return fmt.Sprintf("%s (+%d dmg)", e.name, e.damageBonus)
}
