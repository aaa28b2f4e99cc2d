package inventory

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed content/weapons.yaml
var standardWeaponsYAML []byte

// Registry holds loaded weapon definitions indexed by ID.
type Registry struct {
	weapons map[string]*WeaponDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{weapons: make(map[string]*WeaponDef)}
}

// RegisterWeapon validates w and adds it to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w is invalid or w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: %w", err)
	}
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// Weapon returns the WeaponDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Weapon(id string) (*WeaponDef, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// AllWeapons returns all registered WeaponDefs sorted by ID.
//
// Postcondition: len(result) == number of registered weapons.
func (r *Registry) AllWeapons() []*WeaponDef {
	out := make([]*WeaponDef, 0, len(r.weapons))
	for _, w := range r.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StandardWeapons returns a Registry holding the built-in weapon catalog.
//
// Postcondition: Returns a Registry containing iron_sword, magic_staff, and steel_dagger.
func StandardWeapons() *Registry {
	var defs []*WeaponDef
	if err := yaml.Unmarshal(standardWeaponsYAML, &defs); err != nil {
		panic(fmt.Sprintf("inventory: parsing built-in weapons: %v", err))
	}
	r := NewRegistry()
	for _, d := range defs {
		if err := r.RegisterWeapon(d); err != nil {
			panic(fmt.Sprintf("inventory: registering built-in weapons: %v", err))
		}
	}
	return r
}
