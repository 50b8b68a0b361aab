package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	letters := c.Letters()
	assert.Len(t, letters, 27)
	assert.Len(t, c.Alphabet(), 22)
	assert.NotEmpty(t, c.Words())

	alef, ok := c.Letter("alef")
	require.True(t, ok)
	assert.Equal(t, "א", alef.Glyph)
	assert.Equal(t, "letters/alef.mp3", alef.AudioRef)

	memSofit, ok := c.Letter("mem-sofit")
	require.True(t, ok)
	assert.True(t, memSofit.Final)
	assert.Equal(t, "letters/mem.mp3", memSofit.AudioRef, "final forms share the base letter audio")
}

func TestDefaultCatalog_WordsResolveMissingLetters(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, w := range c.Words() {
		assert.NotEmpty(t, w.MissingLetter.ID, "word %s", w.FullText)
		assert.Equal(t, w.FullText, w.Filled(w.MissingLetter.Glyph))
	}
}

func TestLettersReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	letters := c.Letters()
	letters[0].Name = "changed"

	again := c.Letters()
	assert.Equal(t, "Alef", again[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	validWords := []byte(`[]`)
	validLetters := []byte(`[{"id":"alef","letter":"א","name":"Alef","audio":"a.mp3"}]`)

	tests := []struct {
		name       string
		letters    string
		words      string
		wantSchema bool
	}{
		{
			name:       "invalid json",
			letters:    `[{`,
			words:      string(validWords),
			wantSchema: true,
		},
		{
			name:       "missing required field",
			letters:    `[{"id":"alef","letter":"א","name":"Alef"}]`,
			words:      string(validWords),
			wantSchema: true,
		},
		{
			name:       "empty letters",
			letters:    `[]`,
			words:      string(validWords),
			wantSchema: true,
		},
		{
			name:       "word without blank",
			letters:    string(validLetters),
			words:      `[{"fullWord":"אא","displayWord":"אא","audio":"w.mp3","missingLetter":"א"}]`,
			wantSchema: true,
		},
		{
			name:    "duplicate id",
			letters: `[{"id":"alef","letter":"א","name":"Alef","audio":"a.mp3"},{"id":"alef","letter":"ב","name":"Bet","audio":"b.mp3"}]`,
			words:   string(validWords),
		},
		{
			name:    "unknown missing letter",
			letters: string(validLetters),
			words:   `[{"fullWord":"בא","displayWord":"_א","audio":"w.mp3","missingLetter":"ב"}]`,
		},
		{
			name:    "filled word mismatch",
			letters: string(validLetters),
			words:   `[{"fullWord":"אב","displayWord":"_א","audio":"w.mp3","missingLetter":"א"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.letters), []byte(tt.words))
			require.Error(t, err)

			var schemaErr *SchemaError
			if tt.wantSchema {
				assert.True(t, errors.As(err, &schemaErr), "want SchemaError, got %v", err)
			} else {
				assert.ErrorIs(t, err, ErrInconsistent)
			}
		})
	}
}

func TestLoadFiles_Override(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.json")
	doc := `[{"fullWord":"דג","displayWord":"_ג","audio":"words/dag.mp3","missingLetter":"ד","meaning":"fish"}]`
	require.NoError(t, os.WriteFile(wordsPath, []byte(doc), 0o644))

	c, err := LoadFiles("", wordsPath)
	require.NoError(t, err)

	words := c.Words()
	require.Len(t, words, 1)
	assert.Equal(t, "dalet", words[0].MissingLetter.ID)
	assert.Len(t, c.Letters(), 27, "letters fall back to the embedded catalog")
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestAudioRefs_Distinct(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	refs := c.AudioRefs()
	seen := make(map[string]bool)
	for _, r := range refs {
		assert.False(t, seen[r], "duplicate ref %s", r)
		seen[r] = true
	}
	// 22 base letter files plus one per word; finals reuse base files.
	assert.Len(t, refs, 22+len(c.Words()))
}
