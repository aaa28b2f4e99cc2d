package ruleset

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Built-in class IDs.
const (
	ClassWarrior = "warrior"
	ClassMage    = "mage"
	ClassRogue   = "rogue"
)

//go:embed content/classes.yaml
var standardClassesYAML []byte

// Registry provides lookup of classes by ID.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Register validates c and adds it to the registry.
//
// Precondition: c must be non-nil.
// Postcondition: Class(c.ID) returns c; returns error if c is invalid or c.ID is already registered.
func (r *Registry) Register(c *Class) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("ruleset: Registry.Register: %w", err)
	}
	if _, exists := r.classes[c.ID]; exists {
		return fmt.Errorf("ruleset: Registry.Register: class ID %q already registered", c.ID)
	}
	r.classes[c.ID] = c
	return nil
}

// Class returns the Class for the given ID, if registered.
//
// Postcondition: Returns the registered Class and true, or nil and false if not found.
func (r *Registry) Class(id string) (*Class, bool) {
	c, ok := r.classes[id]
	return c, ok
}

// All returns every registered class sorted by ID.
func (r *Registry) All() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StandardClasses returns a Registry holding the built-in Warrior, Mage, and Rogue classes.
//
// Postcondition: Class(ClassWarrior), Class(ClassMage), and Class(ClassRogue) all succeed.
func StandardClasses() *Registry {
	var defs []*Class
	if err := yaml.Unmarshal(standardClassesYAML, &defs); err != nil {
		panic(fmt.Sprintf("ruleset: parsing built-in classes: %v", err))
	}
	r := NewRegistry()
	for _, c := range defs {
		if err := r.Register(c); err != nil {
			panic(fmt.Sprintf("ruleset: registering built-in classes: %v", err))
		}
	}
	return r
}
