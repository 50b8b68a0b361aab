package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/otiyot/internal/validate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })
	require.NoError(t, validate.Shared().Struct(cfg))

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.FeedbackDelay)
	assert.Equal(t, time.Second, cfg.Game.RetryDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.PromptDelay)
	assert.Equal(t, "easy", cfg.Game.DefaultDifficulty)
	assert.Equal(t, 10, cfg.Game.DefaultQuestions)
	assert.Equal(t, "reprompt", cfg.Game.IncorrectPolicy)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
game:
  feedback_delay: 2s
  default_difficulty: hard
  default_questions: 15
  incorrect_policy: advance
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Game.FeedbackDelay)
	assert.Equal(t, "hard", cfg.Game.DefaultDifficulty)
	assert.Equal(t, 15, cfg.Game.DefaultQuestions)
	assert.Equal(t, "advance", cfg.Game.IncorrectPolicy)
	// untouched keys keep their defaults
	assert.Equal(t, time.Second, cfg.Game.RetryDelay)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "game:\n  default_questions: 15\n")
	t.Setenv("OTIYOT_GAME_DEFAULT_QUESTIONS", "20")
	t.Setenv("OTIYOT_AUDIO_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Game.DefaultQuestions)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "unknown difficulty",
			body:  "game:\n  default_difficulty: extreme\n",
			field: "game.default_difficulty",
		},
		{
			name:  "zero questions",
			body:  "game:\n  default_questions: 0\n",
			field: "game.default_questions",
		},
		{
			name:  "unknown policy",
			body:  "game:\n  incorrect_policy: skip\n",
			field: "game.incorrect_policy",
		},
		{
			name:  "bad log level",
			body:  "log:\n  level: loud\n",
			field: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)

			var fieldsErr *validate.FieldsError
			require.ErrorAs(t, err, &fieldsErr)
			assert.Contains(t, fieldsErr.Fields, tt.field)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
