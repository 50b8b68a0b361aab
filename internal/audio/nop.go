package audio

import "context"

// Nop is a Player and Speaker that does nothing. Used when audio is muted.
type Nop struct{}

func (Nop) Play(context.Context, string) error { return nil }

func (Nop) Preload(context.Context, []string) error { return nil }

func (Nop) Speak(context.Context, string) error { return nil }
