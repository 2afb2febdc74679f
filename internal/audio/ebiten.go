package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/jonboulle/clockwork"
)

const (
	contextSampleRate = 44100
	endPollInterval   = 50 * time.Millisecond
)

// EbitenBackend plays an embedded WAV resource through the ebiten audio engine.
type EbitenBackend struct {
	context *ebitenaudio.Context
	data    []byte
	clock   clockwork.Clock
}

// NewEbitenBackend creates a backend for the given WAV data.
func NewEbitenBackend(data []byte, clock clockwork.Clock) *EbitenBackend {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	context := ebitenaudio.CurrentContext()
	if context == nil {
		context = ebitenaudio.NewContext(contextSampleRate)
	}
	return &EbitenBackend{
		context: context,
		data:    data,
		clock:   clock,
	}
}

// Open decodes the resource so the context plays it rate times faster.
func (backend *EbitenBackend) Open(rate float64) (Handle, error) {
	stream, err := decodeAtRate(backend.data, backend.context.SampleRate(), rate)
	if err != nil {
		return nil, err
	}
	player, err := backend.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return &ebitenHandle{
		player: player,
		clock:  backend.clock,
		done:   make(chan struct{}),
	}, nil
}

// decodeAtRate resamples the WAV to contextRate/rate. The context consumes
// contextRate frames per second, so playback runs rate times faster.
func decodeAtRate(data []byte, contextRate int, rate float64) (*wav.Stream, error) {
	if rate <= 0 {
		rate = 1
	}
	stream, err := wav.DecodeWithSampleRate(int(float64(contextRate)/rate), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode alert wav: %w", err)
	}
	return stream, nil
}

type ebitenHandle struct {
	mu        sync.Mutex
	player    *ebitenaudio.Player
	clock     clockwork.Clock
	done      chan struct{}
	closeOnce sync.Once
	paused    bool
	polling   bool
}

func (handle *ebitenHandle) Play() error {
	handle.mu.Lock()
	handle.paused = false
	startPoll := !handle.polling
	handle.polling = true
	handle.mu.Unlock()

	handle.player.Play()
	if startPoll {
		go handle.pollEnd()
	}
	return nil
}

func (handle *ebitenHandle) Pause() {
	handle.mu.Lock()
	handle.paused = true
	handle.mu.Unlock()
	handle.player.Pause()
}

func (handle *ebitenHandle) Rewind() error {
	return handle.player.Rewind()
}

func (handle *ebitenHandle) Playing() bool {
	return handle.player.IsPlaying()
}

func (handle *ebitenHandle) Done() <-chan struct{} {
	return handle.done
}

func (handle *ebitenHandle) Close() error {
	handle.finish()
	return handle.player.Close()
}

func (handle *ebitenHandle) finish() {
	handle.closeOnce.Do(func() {
		close(handle.done)
	})
}

func (handle *ebitenHandle) pollEnd() {
	ticker := handle.clock.NewTicker(endPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.done:
			return
		case <-ticker.Chan():
			handle.mu.Lock()
			paused := handle.paused
			handle.mu.Unlock()
			if !paused && !handle.player.IsPlaying() {
				handle.finish()
				return
			}
		}
	}
}
