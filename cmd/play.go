package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/otiyot/internal/app"
	"github.com/abhisek/otiyot/internal/config"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/validate"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a game",
}

var playLettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Play Letter Match: pick the letter you hear",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, launch{
			route: app.RouteLetterMatch,
			letterMatch: func(cfg *config.Config) (session.LetterMatchConfig, error) {
				return letterMatchFromFlags(cmd, cfg)
			},
		})
	},
}

var playWordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Play Missing Letter: complete the word",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, launch{route: app.RouteWordCompletion})
	},
}

func init() {
	playLettersCmd.Flags().String("difficulty", "", "easy, medium or hard (default from config)")
	playLettersCmd.Flags().Int("questions", 0, "Number of questions (default from config)")

	playCmd.AddCommand(playLettersCmd)
	playCmd.AddCommand(playWordsCmd)
}

// letterMatchFromFlags starts from the configured defaults and applies the
// flags that were set.
func letterMatchFromFlags(cmd *cobra.Command, cfg *config.Config) (session.LetterMatchConfig, error) {
	lm := session.LetterMatchConfig{
		Difficulty:    session.Difficulty(cfg.Game.DefaultDifficulty),
		QuestionCount: cfg.Game.DefaultQuestions,
	}
	if cmd.Flags().Changed("difficulty") {
		s, _ := cmd.Flags().GetString("difficulty")
		d, err := session.ParseDifficulty(s)
		if err != nil {
			return lm, fmt.Errorf("invalid --difficulty: %w", err)
		}
		lm.Difficulty = d
	}
	if cmd.Flags().Changed("questions") {
		lm.QuestionCount, _ = cmd.Flags().GetInt("questions")
	}
	if err := validate.Shared().Struct(lm); err != nil {
		return lm, fmt.Errorf("invalid letter match options: %w", err)
	}
	return lm, nil
}
