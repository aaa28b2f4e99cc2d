// Package showcase runs the scripted class demonstration: it builds a roster,
// prints each character's stats, and has every character hit a training dummy.
package showcase

import (
	"fmt"
	"io"
	"strings"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/inventory"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

const banner = `=== CHARACTER ABILITIES SHOWCASE ===
Testing inheritance, polymorphism, and method overriding
====================================`

// BuildRoster creates one character per roster entry.
//
// Postcondition: Returns characters in roster order, or an error naming the first entry that
// references an unknown class or cannot be built.
func BuildRoster(roster []config.RosterEntry, classes *ruleset.Registry, weapons *inventory.Registry) ([]*combat.Character, error) {
	out := make([]*combat.Character, 0, len(roster))
	for i, e := range roster {
		class, ok := classes.Class(e.Class)
		if !ok {
			return nil, fmt.Errorf("roster[%d] %q: unknown class %q", i, e.Name, e.Class)
		}
		c, err := combat.NewCharacter(e.Name, class, weapons)
		if err != nil {
			return nil, fmt.Errorf("roster[%d] %q: %w", i, e.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Run prints the showcase to w.
//
// The first roster member performs a basic attack on the dummy; every later member uses
// its special ability. The dummy's remaining health is printed last.
// Precondition: cfg has passed config validation; narrator must be non-nil.
// Postcondition: Returns nil after the full script is written, or the first build or write error.
func Run(w io.Writer, cfg config.ShowcaseConfig, classes *ruleset.Registry, weapons *inventory.Registry, narrator *combat.Narrator) error {
	party, err := BuildRoster(cfg.Roster, classes, weapons)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}
	dummy, err := combat.NewCombatant(cfg.Dummy.Name, cfg.Dummy.Health, cfg.Dummy.Strength, cfg.Dummy.Magic)
	if err != nil {
		return fmt.Errorf("building dummy: %w", err)
	}

	var b strings.Builder
	b.WriteString(banner + "\n")
	for _, c := range party {
		b.WriteString(c.DisplayStats() + "\n")
	}

	b.WriteString("\n--- Demo Attacks ---\n")
	for i, c := range party {
		action := combat.ActionSpecialAbility
		if i == 0 {
			action = combat.ActionBasicAttack
		}
		b.WriteString(narrator.Act(c, action, dummy).Message + "\n")
	}
	fmt.Fprintf(&b, "Dummy health: %d\n", dummy.Health())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing showcase: %w", err)
	}
	return nil
}
