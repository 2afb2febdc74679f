package animation

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config contains pulse timing values.
type Config struct {
	Period time.Duration
	Peak   float32
	Steps  int
}

// Engine drives a repeating scale animation until stopped.
type Engine struct {
	mu          sync.Mutex
	config      Config
	clock       clockwork.Clock
	updateScale func(float32)
	cancel      context.CancelFunc
}

// New creates a new animation engine.
func New(config Config, clock clockwork.Clock, updateScale func(float32)) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if config.Period <= 0 {
		config.Period = DefaultConfig().Period
	}
	return &Engine{
		config:      config,
		clock:       clock,
		updateScale: updateScale,
	}
}

// StartPulse starts the pulse loop. A running pulse keeps going.
func (engine *Engine) StartPulse(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.mu.Unlock()

	spec := Keyframes(engine.config.Peak, engine.config.Steps)
	go engine.run(runCtx, spec)
}

// Stop terminates any active animation and restores the base scale.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
		engine.updateScale(1)
	}
}

// Running reports whether a pulse is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

func (engine *Engine) run(ctx context.Context, spec PulseSpec) {
	frameDuration := engine.config.Period / time.Duration(len(spec.Frames))
	for {
		for _, scale := range spec.Frames {
			if !engine.apply(ctx, scale) {
				return
			}
			if !engine.sleepWithContext(ctx, frameDuration) {
				return
			}
		}
	}
}

// apply sets a frame scale unless the pulse was stopped. Stop holds the same
// lock, so its reset to 1 is always the last update.
func (engine *Engine) apply(ctx context.Context, scale float32) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	engine.updateScale(scale)
	return true
}

func (engine *Engine) sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := engine.clock.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
