// Package catalog loads the static letter and word catalogs used by the games.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	//go:embed data/letters.json
	lettersJSON []byte

	//go:embed data/words.json
	wordsJSON []byte

	//go:embed data/letters.schema.json
	lettersSchema []byte

	//go:embed data/words.schema.json
	wordsSchema []byte
)

// ErrInconsistent is wrapped by errors for catalogs that pass the schema but
// contradict themselves (duplicate IDs, unknown missing letters, ...).
var ErrInconsistent = errors.New("inconsistent catalog")

// Catalog is the read-only set of letters and words loaded at startup.
type Catalog struct {
	letters []Letter
	words   []Word
	byID    map[string]int
	byGlyph map[string]int
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(lettersJSON, wordsJSON)
}

// LoadFiles reads catalog overrides from disk. An empty path falls back to
// the embedded document for that catalog.
func LoadFiles(lettersPath, wordsPath string) (*Catalog, error) {
	letters := lettersJSON
	if lettersPath != "" {
		data, err := os.ReadFile(lettersPath)
		if err != nil {
			return nil, fmt.Errorf("read letters catalog: %w", err)
		}
		letters = data
	}

	words := wordsJSON
	if wordsPath != "" {
		data, err := os.ReadFile(wordsPath)
		if err != nil {
			return nil, fmt.Errorf("read words catalog: %w", err)
		}
		words = data
	}

	return Load(letters, words)
}

// Load validates and decodes the two catalog documents.
func Load(lettersDoc, wordsDoc []byte) (*Catalog, error) {
	if err := validateDocument("letters", lettersSchema, lettersDoc); err != nil {
		return nil, err
	}
	if err := validateDocument("words", wordsSchema, wordsDoc); err != nil {
		return nil, err
	}

	var letterRecs []letterRecord
	if err := json.Unmarshal(lettersDoc, &letterRecs); err != nil {
		return nil, fmt.Errorf("decode letters: %w", err)
	}
	var wordRecs []wordRecord
	if err := json.Unmarshal(wordsDoc, &wordRecs); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}

	c := &Catalog{
		letters: make([]Letter, 0, len(letterRecs)),
		words:   make([]Word, 0, len(wordRecs)),
		byID:    make(map[string]int, len(letterRecs)),
		byGlyph: make(map[string]int, len(letterRecs)),
	}

	for _, rec := range letterRecs {
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate letter id %q", ErrInconsistent, rec.ID)
		}
		if _, dup := c.byGlyph[rec.Letter]; dup {
			return nil, fmt.Errorf("%w: duplicate glyph %q", ErrInconsistent, rec.Letter)
		}
		c.byID[rec.ID] = len(c.letters)
		c.byGlyph[rec.Letter] = len(c.letters)
		c.letters = append(c.letters, rec.toLetter())
	}

	for i, rec := range wordRecs {
		idx, ok := c.byGlyph[rec.MissingLetter]
		if !ok {
			return nil, fmt.Errorf("%w: word %d (%s): unknown missing letter %q",
				ErrInconsistent, i, rec.FullWord, rec.MissingLetter)
		}
		if strings.Count(rec.DisplayWord, Blank) != 1 {
			return nil, fmt.Errorf("%w: word %d (%s): display text must contain exactly one blank",
				ErrInconsistent, i, rec.FullWord)
		}
		w := Word{
			FullText:      rec.FullWord,
			DisplayText:   rec.DisplayWord,
			AudioRef:      rec.Audio,
			MissingLetter: c.letters[idx],
			Meaning:       rec.Meaning,
		}
		if w.Filled(rec.MissingLetter) != rec.FullWord {
			return nil, fmt.Errorf("%w: word %d (%s): filled display text %q does not match",
				ErrInconsistent, i, rec.FullWord, w.Filled(rec.MissingLetter))
		}
		c.words = append(c.words, w)
	}

	return c, nil
}

// Letters returns every letter, final forms included, in catalog order.
func (c *Catalog) Letters() []Letter {
	out := make([]Letter, len(c.letters))
	copy(out, c.letters)
	return out
}

// Alphabet returns the base letters (no final forms) in catalog order.
func (c *Catalog) Alphabet() []Letter {
	out := make([]Letter, 0, len(c.letters))
	for _, l := range c.letters {
		if !l.Final {
			out = append(out, l)
		}
	}
	return out
}

// Words returns the word catalog in order.
func (c *Catalog) Words() []Word {
	out := make([]Word, len(c.words))
	copy(out, c.words)
	return out
}

// Letter looks up a letter by ID.
func (c *Catalog) Letter(id string) (Letter, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Letter{}, false
	}
	return c.letters[idx], true
}

// AudioRefs returns every distinct audio reference in the catalog, for
// preloading.
func (c *Catalog) AudioRefs() []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(ref string) {
		if ref == "" || seen[ref] {
			return
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	for _, l := range c.letters {
		add(l.AudioRef)
	}
	for _, w := range c.words {
		add(w.AudioRef)
	}
	return refs
}
