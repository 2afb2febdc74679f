package countdown

import (
	"sync"

	"zoneclock/internal/core/model"

	"github.com/jonboulle/clockwork"
)

// Alert plays and silences the countdown sound.
type Alert interface {
	Play()
	Stop()
}

// New returns a running countdown with the given identity.
func New(id int64) model.Countdown {
	return model.Countdown{
		ID:      id,
		Time:    model.CountdownSeconds,
		Running: true,
	}
}

// Advance applies a single tick. The second result is true only on the
// transition to zero.
func Advance(countdown model.Countdown) (model.Countdown, bool) {
	if !countdown.Running || countdown.Time <= 0 {
		return countdown, false
	}

	next := countdown.Time - 1
	if next <= 0 {
		countdown.Time = 0
		countdown.Running = false
		countdown.Message = model.FinishedMessage
		countdown.Animate = true
		return countdown, true
	}

	countdown.Time = next
	return countdown, false
}

// Restart returns the countdown in its initial running state, keeping its ID.
func Restart(countdown model.Countdown) model.Countdown {
	return New(countdown.ID)
}

// Machine holds zero or one countdown and triggers the alert on transitions.
type Machine struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	alert   Alert
	current *model.Countdown
	lastID  int64
}

// NewMachine creates an empty machine.
func NewMachine(clock clockwork.Clock, alert Alert) *Machine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Machine{
		clock: clock,
		alert: alert,
	}
}

// Start creates a countdown unless one already exists.
func (machine *Machine) Start() (model.Countdown, bool) {
	machine.mu.Lock()
	if machine.current != nil {
		current := *machine.current
		machine.mu.Unlock()
		return current, false
	}

	created := New(machine.nextIDLocked())
	machine.current = &created
	machine.mu.Unlock()

	machine.play()
	return created, true
}

// Tick advances a running countdown by one second and reports whether the
// value changed and whether it just reached zero.
func (machine *Machine) Tick() (model.Countdown, bool, bool) {
	machine.mu.Lock()
	if machine.current == nil {
		machine.mu.Unlock()
		return model.Countdown{}, false, false
	}

	before := *machine.current
	after, finished := Advance(before)
	*machine.current = after
	machine.mu.Unlock()

	if finished {
		machine.play()
	}
	return after, after != before, finished
}

// Reset restarts the countdown with the given ID.
func (machine *Machine) Reset(id int64) (model.Countdown, bool) {
	machine.mu.Lock()
	if machine.current == nil || machine.current.ID != id {
		machine.mu.Unlock()
		return model.Countdown{}, false
	}
	machine.mu.Unlock()

	machine.stop()
	machine.play()

	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.current == nil || machine.current.ID != id {
		return model.Countdown{}, false
	}
	restarted := Restart(*machine.current)
	*machine.current = restarted
	return restarted, true
}

// Delete removes the countdown with the given ID.
func (machine *Machine) Delete(id int64) bool {
	machine.mu.Lock()
	if machine.current == nil || machine.current.ID != id {
		machine.mu.Unlock()
		return false
	}
	machine.mu.Unlock()

	machine.stop()

	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.current == nil || machine.current.ID != id {
		return false
	}
	machine.current = nil
	return true
}

// Current returns a copy of the countdown, if any.
func (machine *Machine) Current() (model.Countdown, bool) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.current == nil {
		return model.Countdown{}, false
	}
	return *machine.current, true
}

func (machine *Machine) nextIDLocked() int64 {
	id := machine.clock.Now().UnixMilli()
	if id <= machine.lastID {
		id = machine.lastID + 1
	}
	machine.lastID = id
	return id
}

func (machine *Machine) play() {
	if machine.alert != nil {
		machine.alert.Play()
	}
}

func (machine *Machine) stop() {
	if machine.alert != nil {
		machine.alert.Stop()
	}
}
