package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// FilePlayer plays clips from a directory by running an external command
// with the clip path appended, e.g. "mpg123 -q" or "afplay".
type FilePlayer struct {
	dir  string
	argv []string

	mu    sync.Mutex
	paths map[string]string // ref -> resolved path, "" when missing
}

// NewFilePlayer returns a player for clips under dir. command is split on
// whitespace.
func NewFilePlayer(dir, command string) *FilePlayer {
	return &FilePlayer{
		dir:   dir,
		argv:  strings.Fields(command),
		paths: make(map[string]string),
	}
}

// Play resolves ref and blocks until the command exits or ctx is done.
func (p *FilePlayer) Play(ctx context.Context, ref string) error {
	if len(p.argv) == 0 {
		return ErrNoBackend
	}
	path, err := p.resolve(ref)
	if err != nil {
		return err
	}

	args := append(append([]string{}, p.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, p.argv[0], args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play %s: %w", ref, err)
	}
	return nil
}

// Preload resolves every ref so Play does not hit the filesystem later.
// Missing clips are reported together.
func (p *FilePlayer) Preload(ctx context.Context, refs []string) error {
	var errs []error
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.resolve(ref); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *FilePlayer) resolve(ref string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	path, ok := p.paths[ref]
	if !ok {
		candidate := filepath.Join(p.dir, filepath.FromSlash(ref))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			path = candidate
		}
		p.paths[ref] = path
	}
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return path, nil
}

// CommandSpeaker speaks text by running an external command with the text
// appended, e.g. "espeak -v he" or "say".
type CommandSpeaker struct {
	argv []string
}

// NewCommandSpeaker returns a speaker for command, split on whitespace.
func NewCommandSpeaker(command string) *CommandSpeaker {
	return &CommandSpeaker{argv: strings.Fields(command)}
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	if len(s.argv) == 0 {
		return ErrNoBackend
	}
	args := append(append([]string{}, s.argv[1:]...), text)
	if err := exec.CommandContext(ctx, s.argv[0], args...).Run(); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}
