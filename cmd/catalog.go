package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/otiyot/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the letter and word catalogs",
}

var catalogLettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "List every letter, final forms included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogForCommand(cmd)
		if err != nil {
			return err
		}
		printLetters(cmd.OutOrStdout(), cat.Letters())
		return nil
	},
}

var catalogWordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the Missing Letter words in play order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogForCommand(cmd)
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), cat.Words())
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogLettersCmd)
	catalogCmd.AddCommand(catalogWordsCmd)
}

func catalogForCommand(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return loadCatalog(cfg)
}

func printLetters(w io.Writer, letters []catalog.Letter) {
	fmt.Fprintf(w, "%-10s  %-6s  %-12s  %-28s  %s\n",
		"ID", "Letter", "Name", "Pronunciation", "Audio")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, l := range letters {
		name := l.Name
		if l.Final {
			name += " *"
		}
		fmt.Fprintf(w, "%-10s  %-6s  %-12s  %-28s  %s\n",
			l.ID, l.Glyph, name, l.Pronunciation, l.AudioRef)
	}

	fmt.Fprintf(w, "\n%d letters (* final form)\n", len(letters))
}

func printWords(w io.Writer, words []catalog.Word) {
	fmt.Fprintf(w, "%-4s  %-10s  %-10s  %-7s  %s\n",
		"#", "Word", "Shown", "Missing", "Meaning")
	fmt.Fprintln(w, strings.Repeat("─", 60))

	for i, word := range words {
		fmt.Fprintf(w, "%-4d  %-10s  %-10s  %-7s  %s\n",
			i+1, word.FullText, word.DisplayText, word.MissingLetter.Glyph, word.Meaning)
	}

	fmt.Fprintf(w, "\n%d words\n", len(words))
}
