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
		Game: GameConfig{
			Randomness: "hash",
			ViewWidth:  21,
			ViewHeight: 11,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaults()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "hash", cfg.Game.Randomness)
	assert.Equal(t, 21, cfg.Game.ViewWidth)
	assert.Equal(t, "", cfg.Logging.File)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legend.yaml")
	err := os.WriteFile(path, []byte(`
game:
  scenario: ./scenarios/hyrule
  randomness: seeded
  seed: 42
  view_width: 31
logging:
  level: debug
  format: json
  file: legend.log
ui:
  plain: true
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./scenarios/hyrule", cfg.Game.Scenario)
	assert.Equal(t, "seeded", cfg.Game.Randomness)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 31, cfg.Game.ViewWidth)
	assert.Equal(t, 11, cfg.Game.ViewHeight)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "legend.log", cfg.Logging.File)
	assert.True(t, cfg.UI.Plain)
	assert.False(t, cfg.UI.Trace)
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LEGEND_GAME_RANDOMNESS", "seeded")
	t.Setenv("LEGEND_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "seeded", cfg.Game.Randomness)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/legend.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legend.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  randomness: dice\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.randomness")
}

func TestValidateRandomness(t *testing.T) {
	cfg := validConfig()
	cfg.Game.Randomness = "chaos"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.randomness")
}

func TestValidateLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Game.Randomness = ""
	cfg.Game.ViewWidth = 4
	cfg.Game.ViewHeight = 101
	cfg.Logging.Level = ""
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"game.randomness", "game.view_width", "game.view_height", "logging.level"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestPropertyOddViewSizesValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 49).Draw(t, "half")*2 + 1
		cfg := validConfig()
		cfg.Game.ViewWidth = n
		cfg.Game.ViewHeight = n
		assert.NoError(t, cfg.Validate())
	})
}

func TestPropertyEvenViewSizesInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(t, "half") * 2
		cfg := validConfig()
		cfg.Game.ViewWidth = n
		assert.Error(t, cfg.Validate())
	})
}
