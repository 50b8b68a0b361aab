package play

import "github.com/abhisek/otiyot/internal/audio"

// promptMsg fires promptDelay after a question is shown.
type promptMsg struct {
	seq int
}

// audioDoneMsg is sent when a clip or its fallback finished.
type audioDoneMsg struct {
	result audio.Result
}
