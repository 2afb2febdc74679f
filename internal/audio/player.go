package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// AlertRate is the playback speed of the countdown alert.
const AlertRate = 2.2

// ErrNoBackend indicates the player was built without an audio backend.
var ErrNoBackend = errors.New("audio backend unavailable")

// Handle is a single playback of the alert resource.
type Handle interface {
	Play() error
	Pause()
	Rewind() error
	Playing() bool
	// Done is closed when playback reaches its natural end or the handle is closed.
	Done() <-chan struct{}
	Close() error
}

// Backend opens playback handles for the alert resource.
type Backend interface {
	Open(rate float64) (Handle, error)
}

// Player owns at most one active playback handle.
type Player struct {
	mu      sync.Mutex
	backend Backend
	rate    float64
	active  Handle
}

// NewPlayer creates a player that plays at AlertRate.
func NewPlayer(backend Backend) *Player {
	return &Player{
		backend: backend,
		rate:    AlertRate,
	}
}

// Play starts the alert unless a playback is already in progress.
func (player *Player) Play() {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.active != nil && player.active.Playing() {
		return
	}
	player.releaseLocked()

	handle, err := player.openLocked()
	if err != nil {
		log.Warn().Err(err).Msg("playback error")
		return
	}
	if err := handle.Play(); err != nil {
		_ = handle.Close()
		log.Warn().Err(err).Msg("playback error")
		return
	}

	player.active = handle
	go player.watch(handle)
}

// Stop pauses, rewinds and clears the active handle.
func (player *Player) Stop() {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.active == nil {
		return
	}
	player.active.Pause()
	if err := player.active.Rewind(); err != nil {
		log.Warn().Err(err).Msg("rewind alert")
	}
	player.releaseLocked()
}

// Active reports whether a playback handle is held.
func (player *Player) Active() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.active != nil
}

func (player *Player) openLocked() (Handle, error) {
	if player.backend == nil {
		return nil, ErrNoBackend
	}
	handle, err := player.backend.Open(player.rate)
	if err != nil {
		return nil, fmt.Errorf("open alert: %w", err)
	}
	return handle, nil
}

func (player *Player) releaseLocked() {
	if player.active == nil {
		return
	}
	if err := player.active.Close(); err != nil {
		log.Debug().Err(err).Msg("close alert handle")
	}
	player.active = nil
}

func (player *Player) watch(handle Handle) {
	<-handle.Done()

	player.mu.Lock()
	defer player.mu.Unlock()
	if player.active == handle {
		player.releaseLocked()
	}
}
