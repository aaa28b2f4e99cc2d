// Package combat implements combatants, character classes, and the rules for
// resolving attacks and special abilities between them.
package combat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Entity is the identity shared by everything that can take part in a fight.
type Entity struct {
	ID   string
	Name string
}

// Describe returns the entity's display name.
func (e Entity) Describe() string { return e.Name }

// Combatant is an entity with health and attributes.
//
// Invariant: 0 <= Health() <= MaxHealth(); MaxHealth() never changes after construction.
type Combatant struct {
	Entity
	health    int
	maxHealth int
	strength  int
	magic     int
}

// NewCombatant creates a Combatant at full health.
//
// Precondition: name must be non-empty; health must be >= 1.
// Postcondition: Returns a Combatant with Health() == MaxHealth() == health, or a non-nil error.
func NewCombatant(name string, health, strength, magic int) (*Combatant, error) {
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if health < 1 {
		errs = append(errs, fmt.Errorf("health must be >= 1, got %d", health))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("combat: NewCombatant: %w", errors.Join(errs...))
	}
	return &Combatant{
		Entity:    Entity{ID: uuid.New().String(), Name: name},
		health:    health,
		maxHealth: health,
		strength:  strength,
		magic:     magic,
	}, nil
}

// Health returns current health.
func (c *Combatant) Health() int { return c.health }

// MaxHealth returns the health the combatant was created with.
func (c *Combatant) MaxHealth() int { return c.maxHealth }

// Strength returns the strength attribute.
func (c *Combatant) Strength() int { return c.strength }

// Magic returns the magic attribute.
func (c *Combatant) Magic() int { return c.magic }

// IsAlive reports whether the combatant has health remaining.
// Postcondition: Returns true iff Health() > 0.
func (c *Combatant) IsAlive() bool { return c.health > 0 }

// ApplyDamage reduces health by amount, flooring at zero, and returns the new health.
// A negative amount is treated as zero.
//
// Postcondition: Health() == max(0, previous Health() - max(0, amount)).
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	c.health = max(0, c.health-amount)
	return c.health
}

// DisplayStats renders name, health, strength, and magic.
func (c *Combatant) DisplayStats() string {
	return fmt.Sprintf("%s - Health: %d/%d, Strength: %d, Magic: %d",
		c.Name, c.health, c.maxHealth, c.strength, c.magic)
}
