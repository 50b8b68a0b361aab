package catalog

// Letter is a single entry of the Hebrew alphabet catalog.
type Letter struct {
	ID            string
	Glyph         string
	Name          string
	Pronunciation string
	AudioRef      string

	// Final is true for the five sofit forms (ך ם ן ף ץ).
	Final bool
}

// letterRecord is the on-disk JSON form of a Letter.
type letterRecord struct {
	ID            string `json:"id"`
	Letter        string `json:"letter"`
	Name          string `json:"name"`
	Pronunciation string `json:"pronunciation"`
	Audio         string `json:"audio"`
	Final         bool   `json:"final"`
}

func (r letterRecord) toLetter() Letter {
	return Letter{
		ID:            r.ID,
		Glyph:         r.Letter,
		Name:          r.Name,
		Pronunciation: r.Pronunciation,
		AudioRef:      r.Audio,
		Final:         r.Final,
	}
}

// IDs returns the IDs of letters in order.
func IDs(letters []Letter) []string {
	ids := make([]string, len(letters))
	for i, l := range letters {
		ids[i] = l.ID
	}
	return ids
}
