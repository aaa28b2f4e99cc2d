package showcase

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/inventory"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

// LoadContent returns the built-in classes and weapons plus any extra definitions
// found in the configured content directories.
//
// Postcondition: Returns both registries, or a non-nil error if a directory cannot be
// loaded or an extra definition reuses a built-in ID.
func LoadContent(cfg config.ContentConfig) (*ruleset.Registry, *inventory.Registry, error) {
	classes := ruleset.StandardClasses()
	weapons := inventory.StandardWeapons()

	if cfg.WeaponsDir != "" {
		defs, err := inventory.LoadWeapons(cfg.WeaponsDir)
		if err != nil {
			return nil, nil, fmt.Errorf("loading weapons: %w", err)
		}
		for _, d := range defs {
			if err := weapons.RegisterWeapon(d); err != nil {
				return nil, nil, fmt.Errorf("loading weapons: %w", err)
			}
		}
	}

	if cfg.ClassesDir != "" {
		defs, err := ruleset.LoadClasses(cfg.ClassesDir)
		if err != nil {
			return nil, nil, fmt.Errorf("loading classes: %w", err)
		}
		for _, c := range defs {
			if err := classes.Register(c); err != nil {
				return nil, nil, fmt.Errorf("loading classes: %w", err)
			}
		}
	}

	return classes, weapons, nil
}
