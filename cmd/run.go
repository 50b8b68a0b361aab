package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/app"
	"github.com/abhisek/otiyot/internal/audio"
	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/config"
	"github.com/abhisek/otiyot/internal/logger"
	"github.com/abhisek/otiyot/internal/session"
)

// launch picks the first screen of the TUI.
type launch struct {
	route       app.Route
	letterMatch func(*config.Config) (session.LetterMatchConfig, error)
}

// loadConfig reads the config file named by --config and applies the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if mute, _ := cmd.Flags().GetBool("mute"); mute {
		cfg.Audio.Enabled = false
	}
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.Log.File = f
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.LoadFiles(cfg.Catalog.LettersFile, cfg.Catalog.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// newAnnouncer builds the audio stack for cfg. Disabled audio gets silent
// backends so the game flow is unchanged; an unset command leaves that
// backend out.
func newAnnouncer(cfg *config.Config, log *zap.Logger) *audio.Announcer {
	if !cfg.Audio.Enabled {
		return audio.NewAnnouncer(audio.Nop{}, audio.Nop{}, log)
	}

	var player audio.Player
	if cfg.Audio.PlayerCmd != "" {
		player = audio.NewFilePlayer(cfg.Audio.Dir, cfg.Audio.PlayerCmd)
	}
	var speaker audio.Speaker
	if cfg.Audio.SpeechCmd != "" {
		speaker = audio.NewCommandSpeaker(cfg.Audio.SpeechCmd)
	}
	return audio.NewAnnouncer(player, speaker, log)
}

// runApp loads config, catalog and audio, then launches the TUI.
func runApp(cmd *cobra.Command, l launch) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.ForTUI(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	announcer := newAnnouncer(cfg, log)
	defer announcer.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	announcer.Init(ctx, append(cat.AudioRefs(), audio.ErrorCueRef))

	opts := app.Options{
		Config:    cfg,
		Catalog:   cat,
		Announcer: announcer,
		Logger:    log,
		Route:     l.route,
	}
	if l.letterMatch != nil {
		lm, err := l.letterMatch(cfg)
		if err != nil {
			return err
		}
		opts.LetterMatch = lm
	}

	log.Info("starting", zap.String("version", version), zap.Int("letters", len(cat.Letters())), zap.Int("words", len(cat.Words())))
	return app.Run(opts)
}
