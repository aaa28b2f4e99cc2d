// Package ruleset holds the class definitions characters are built from.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Class defines the fixed base stats and starting weapon of a character class.
//
// Precondition: ID, Name, Variant, and Weapon must be non-empty after loading.
type Class struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Variant selects the attack and special ability rules: "warrior", "mage", or "rogue".
	Variant  string `yaml:"variant"`
	Health   int    `yaml:"health"`
	Strength int    `yaml:"strength"`
	Magic    int    `yaml:"magic"`
	// Weapon is the ID of the weapon the class starts with.
	Weapon string `yaml:"weapon"`
	// Mana is the maximum mana pool; 0 means the class tracks no mana.
	Mana int `yaml:"mana"`
}

// Validate checks all Class invariants.
//
// Postcondition: Returns nil if the class is valid, or an error describing all violations.
func (c *Class) Validate() error {
	var errs []string
	if c.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if c.Variant == "" {
		errs = append(errs, "variant must not be empty")
	}
	if c.Health < 1 {
		errs = append(errs, fmt.Sprintf("health must be >= 1, got %d", c.Health))
	}
	if c.Strength < 0 {
		errs = append(errs, fmt.Sprintf("strength must be >= 0, got %d", c.Strength))
	}
	if c.Magic < 0 {
		errs = append(errs, fmt.Sprintf("magic must be >= 0, got %d", c.Magic))
	}
	if c.Weapon == "" {
		errs = append(errs, "weapon must not be empty")
	}
	if c.Mana < 0 {
		errs = append(errs, fmt.Sprintf("mana must be >= 0, got %d", c.Mana))
	}
	if len(errs) > 0 {
		return fmt.Errorf("class %q: %s", c.ID, strings.Join(errs, "; "))
	}
	return nil
}

// LoadClasses reads all .yaml files in dir and parses each as a Class.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed and validated classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("validating class file %s: %w", path, err)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
