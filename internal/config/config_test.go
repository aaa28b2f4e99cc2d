package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Showcase: ShowcaseConfig{
			Roster: DefaultRoster(),
			Dummy: DummyConfig{
				Name:     "Training Dummy",
				Health:   100,
				Strength: 5,
				Magic:    5,
			},
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Content.ClassesDir)
	assert.Empty(t, cfg.Content.WeaponsDir)
	assert.Equal(t, DefaultRoster(), cfg.Showcase.Roster)
	assert.Equal(t, DummyConfig{Name: "Training Dummy", Health: 100, Strength: 5, Magic: 5}, cfg.Showcase.Dummy)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
content:
  classes_dir: content/classes
  weapons_dir: content/weapons
showcase:
  roster:
    - name: Brakka
      class: warrior
    - name: Sel
      class: rogue
  dummy:
    name: Scarecrow
    health: 60
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "content/classes", cfg.Content.ClassesDir)
	assert.Equal(t, "content/weapons", cfg.Content.WeaponsDir)
	assert.Equal(t, []RosterEntry{{Name: "Brakka", Class: "warrior"}, {Name: "Sel", Class: "rogue"}}, cfg.Showcase.Roster)
	assert.Equal(t, "Scarecrow", cfg.Showcase.Dummy.Name)
	assert.Equal(t, 60, cfg.Showcase.Dummy.Health)
	assert.Equal(t, 5, cfg.Showcase.Dummy.Strength)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ARENA_LOGGING_LEVEL", "warn")
	t.Setenv("ARENA_SHOWCASE_DUMMY_HEALTH", "250")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 250, cfg.Showcase.Dummy.Health)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateRosterEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Showcase.Roster = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateRosterEntries(t *testing.T) {
	cfg := validConfig()
	cfg.Showcase.Roster = []RosterEntry{{Name: "", Class: "warrior"}, {Name: "Sel", Class: ""}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "showcase.roster[0].name")
	assert.Contains(t, err.Error(), "showcase.roster[1].class")
}

func TestValidateDummy(t *testing.T) {
	cfg := validConfig()
	cfg.Showcase.Dummy.Name = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Showcase.Dummy.Health = 0
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyDummyHealth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		health := rapid.IntRange(-1000, 1000).Draw(t, "health")
		cfg := validConfig()
		cfg.Showcase.Dummy.Health = health
		err := cfg.Validate()
		if health >= 1 && err != nil {
			t.Fatalf("valid health %d rejected: %v", health, err)
		}
		if health < 1 && err == nil {
			t.Fatalf("invalid health %d accepted", health)
		}
	})
}
