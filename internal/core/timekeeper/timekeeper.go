package timekeeper

import (
	"sync"
	"time"

	"zoneclock/internal/core/countdown"
	"zoneclock/internal/core/model"

	"github.com/jonboulle/clockwork"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
}

// TimeKeeper owns the repeating tick and the countdown it drives.
type TimeKeeper struct {
	mu       sync.Mutex
	actionMu sync.Mutex // orders each machine call with the events it publishes
	options  Config
	machine  *countdown.Machine
	events   []chan Event
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a TimeKeeper around the provided countdown machine.
func New(machine *countdown.Machine, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	return &TimeKeeper{
		options: options,
		machine: machine,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.doneCh = make(chan struct{})
	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	keeper.mu.Unlock()

	go keeper.run(ticker, keeper.stopCh, keeper.doneCh)
}

// Stop terminates the ticking loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	done := keeper.doneCh
	keeper.running = false
	keeper.mu.Unlock()

	<-done

	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// StartCountdown creates the countdown unless one already exists.
func (keeper *TimeKeeper) StartCountdown() bool {
	keeper.actionMu.Lock()
	defer keeper.actionMu.Unlock()

	created, ok := keeper.machine.Start()
	if ok {
		keeper.emitCountdown(EventCountdownChanged, created, true)
	}
	return ok
}

// ResetCountdown restarts the countdown with the given ID.
func (keeper *TimeKeeper) ResetCountdown(id int64) bool {
	keeper.actionMu.Lock()
	defer keeper.actionMu.Unlock()

	restarted, ok := keeper.machine.Reset(id)
	if ok {
		keeper.emitCountdown(EventCountdownChanged, restarted, true)
	}
	return ok
}

// DeleteCountdown removes the countdown with the given ID.
func (keeper *TimeKeeper) DeleteCountdown(id int64) bool {
	keeper.actionMu.Lock()
	defer keeper.actionMu.Unlock()

	ok := keeper.machine.Delete(id)
	if ok {
		keeper.emitCountdown(EventCountdownChanged, model.Countdown{}, false)
	}
	return ok
}

// Countdown returns the current countdown, if any.
func (keeper *TimeKeeper) Countdown() (model.Countdown, bool) {
	return keeper.machine.Current()
}

func (keeper *TimeKeeper) run(ticker clockwork.Ticker, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.Chan():
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	keeper.actionMu.Lock()
	defer keeper.actionMu.Unlock()

	advanced, changed, finished := keeper.machine.Tick()

	if changed {
		keeper.emit(Event{
			Type:         EventCountdownChanged,
			Countdown:    advanced,
			HasCountdown: true,
			At:           tickTime,
		})
	}
	if finished {
		keeper.emit(Event{
			Type:         EventFinished,
			Countdown:    advanced,
			HasCountdown: true,
			At:           tickTime,
		})
	}

	current, present := keeper.machine.Current()
	keeper.emit(Event{
		Type:         EventTick,
		Countdown:    current,
		HasCountdown: present,
		At:           tickTime,
	})
}

func (keeper *TimeKeeper) emitCountdown(eventType EventType, current model.Countdown, present bool) {
	keeper.emit(Event{
		Type:         eventType,
		Countdown:    current,
		HasCountdown: present,
		At:           keeper.options.Clock.Now(),
	})
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
