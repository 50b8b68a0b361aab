package catalog

import "strings"

// Blank marks the missing letter position in Word.DisplayText.
const Blank = "_"

// Word is a word with exactly one letter blanked out.
type Word struct {
	FullText      string
	DisplayText   string
	AudioRef      string
	MissingLetter Letter
	Meaning       string
}

// wordRecord is the on-disk JSON form of a Word. MissingLetter holds a glyph
// and is resolved against the letter catalog at load time.
type wordRecord struct {
	FullWord      string `json:"fullWord"`
	DisplayWord   string `json:"displayWord"`
	Audio         string `json:"audio"`
	MissingLetter string `json:"missingLetter"`
	Meaning       string `json:"meaning"`
}

// Filled returns the display text with the blank replaced by glyph.
func (w Word) Filled(glyph string) string {
	return strings.Replace(w.DisplayText, Blank, glyph, 1)
}
