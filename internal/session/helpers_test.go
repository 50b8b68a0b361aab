package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/otiyot/internal/catalog"
)

const testFeedback = DefaultFeedbackDelay

func testLetters(n int) []catalog.Letter {
	letters := make([]catalog.Letter, n)
	for i := range letters {
		id := fmt.Sprintf("l%02d", i+1)
		letters[i] = catalog.Letter{
			ID:       id,
			Glyph:    string(rune('A' + i)),
			Name:     "Letter " + id,
			AudioRef: "letters/" + id + ".mp3",
		}
	}
	return letters
}

func testWords(alphabet []catalog.Letter, missing ...int) []catalog.Word {
	words := make([]catalog.Word, len(missing))
	for i, idx := range missing {
		l := alphabet[idx]
		words[i] = catalog.Word{
			FullText:      "x" + l.Glyph,
			DisplayText:   "x" + catalog.Blank,
			AudioRef:      fmt.Sprintf("words/w%d.mp3", i),
			MissingLetter: l,
		}
	}
	return words
}

// wrongChoice returns the ID of a choice that is not the answer.
func wrongChoice(t *testing.T, q *Question) string {
	t.Helper()
	require.NotNil(t, q)
	for _, c := range q.Choices {
		if c.ID != q.Answer.ID {
			return c.ID
		}
	}
	t.Fatal("question has no wrong choice")
	return ""
}

func requireDistinct(t *testing.T, letters []catalog.Letter) {
	t.Helper()
	seen := make(map[string]bool)
	for _, l := range letters {
		require.False(t, seen[l.ID], "duplicate letter %s", l.ID)
		seen[l.ID] = true
	}
}

func countID(letters []catalog.Letter, id string) int {
	n := 0
	for _, l := range letters {
		if l.ID == id {
			n++
		}
	}
	return n
}
