// Package audio plays catalog audio clips and falls back to speech synthesis
// when a clip cannot be played.
package audio

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrorCueRef is the clip played after an incorrect answer.
const ErrorCueRef = "cues/error.mp3"

// ErrorCueSpeech is spoken when the error cue clip is unavailable.
const ErrorCueSpeech = "incorrect"

var (
	// ErrNotFound is returned when a ref does not resolve to a file.
	ErrNotFound = errors.New("audio clip not found")
	// ErrNoBackend is returned when no playback or speech command is configured.
	ErrNoBackend = errors.New("no audio backend configured")
)

// Player plays recorded clips identified by catalog audio refs.
type Player interface {
	Play(ctx context.Context, ref string) error
	// Preload warms whatever the player needs for refs. Best effort.
	Preload(ctx context.Context, refs []string) error
}

// Speaker reads text aloud.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Result reports how an announcement was delivered.
type Result int

const (
	Failed Result = iota
	Played
	Spoken
)

func (r Result) String() string {
	switch r {
	case Played:
		return "played"
	case Spoken:
		return "spoken"
	default:
		return "failed"
	}
}

// Announcer plays a clip and falls back to speaking a label. Failures are
// logged and reported as Failed; they never surface as errors to callers.
type Announcer struct {
	player  Player
	speaker Speaker
	log     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewAnnouncer builds an Announcer. player and speaker may be nil.
func NewAnnouncer(player Player, speaker Speaker, log *zap.Logger) *Announcer {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Announcer{
		player:  player,
		speaker: speaker,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init preloads refs. Preload errors are logged, not returned, since a
// missing clip still has the speech fallback.
func (a *Announcer) Init(ctx context.Context, refs []string) {
	if a.player == nil {
		return
	}
	if err := a.player.Preload(ctx, refs); err != nil {
		a.log.Warn("audio preload incomplete", zap.Error(err))
	}
}

// Announce plays ref, or speaks label if playback fails. In-flight
// announcements are cancelled by Close.
func (a *Announcer) Announce(ctx context.Context, ref, label string) Result {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return Failed
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()
	unlink := context.AfterFunc(a.ctx, stop)
	defer unlink()

	var playErr error
	if a.player != nil && ref != "" {
		if playErr = a.player.Play(ctx, ref); playErr == nil {
			return Played
		}
	} else {
		playErr = ErrNoBackend
	}

	if ctx.Err() != nil {
		return Failed
	}

	var speakErr error
	if a.speaker != nil && label != "" {
		if speakErr = a.speaker.Speak(ctx, label); speakErr == nil {
			a.log.Debug("audio fell back to speech", zap.String("ref", ref), zap.Error(playErr))
			return Spoken
		}
	} else {
		speakErr = ErrNoBackend
	}

	a.log.Warn("audio unavailable",
		zap.String("ref", ref),
		zap.NamedError("play_error", playErr),
		zap.NamedError("speak_error", speakErr))
	return Failed
}

// Close cancels in-flight announcements. Later calls to Announce return Failed.
func (a *Announcer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	a.cancel()
	return nil
}
