// Package config loads application settings from config files, .env and
// OTIYOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/otiyot/internal/validate"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "OTIYOT"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string        `mapstructure:"env" validate:"oneof=local development production"` // application environment
	Log     LogConfig     `mapstructure:"log"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Game    GameConfig    `mapstructure:"game"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"` // empty: stderr for CLI commands, discarded in the TUI
}

// AudioConfig controls playback and the speech fallback.
type AudioConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Dir       string `mapstructure:"dir"`        // directory holding letters/*.mp3 and words/*.mp3
	PlayerCmd string `mapstructure:"player_cmd"` // e.g. "mpg123 -q" or "afplay"
	SpeechCmd string `mapstructure:"speech_cmd"` // e.g. "espeak" or "say"
}

// GameConfig holds quiz timing and defaults.
type GameConfig struct {
	FeedbackDelay     time.Duration `mapstructure:"feedback_delay" validate:"gt=0"`
	RetryDelay        time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	PromptDelay       time.Duration `mapstructure:"prompt_delay" validate:"gte=0"`
	DefaultDifficulty string        `mapstructure:"default_difficulty" validate:"oneof=easy medium hard"`
	DefaultQuestions  int           `mapstructure:"default_questions" validate:"gt=0"`
	IncorrectPolicy   string        `mapstructure:"incorrect_policy" validate:"oneof=reprompt advance"`
}

// CatalogConfig points at optional catalog overrides.
type CatalogConfig struct {
	LettersFile string `mapstructure:"letters_file"`
	WordsFile   string `mapstructure:"words_file"`
}

// Load reads configuration. When path is empty, config.yaml is looked up in
// the working directory and in $XDG_CONFIG_HOME/otiyot; a missing file is not
// an error.
func Load(path string) (*Config, error) {
	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validate.Shared().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decoding defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.dir", "assets/audio")
	v.SetDefault("audio.player_cmd", "")
	v.SetDefault("audio.speech_cmd", "")
	v.SetDefault("game.feedback_delay", "1500ms")
	v.SetDefault("game.retry_delay", "1s")
	v.SetDefault("game.prompt_delay", "500ms")
	v.SetDefault("game.default_difficulty", "easy")
	v.SetDefault("game.default_questions", 10)
	v.SetDefault("game.incorrect_policy", "reprompt")
	v.SetDefault("catalog.letters_file", "")
	v.SetDefault("catalog.words_file", "")
}

// configDir returns $XDG_CONFIG_HOME/otiyot, or ~/.config/otiyot.
func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "otiyot")
}
