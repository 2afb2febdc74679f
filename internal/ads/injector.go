package ads

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Slot describes an ad placeholder in the window.
type Slot struct {
	Client    string
	ID        string
	Format    string
	FullWidth bool
}

// Request asks the ad queue to render one slot.
type Request struct {
	ID   uuid.UUID
	Slot Slot
}

// Queue accepts render requests.
type Queue interface {
	Push(Request) error
}

// DefaultSlot matches the placeholders rendered around the countdown.
func DefaultSlot() Slot {
	return Slot{
		Client:    "ca-pub-7817395457584126",
		ID:        "6362211799",
		Format:    "auto",
		FullWidth: true,
	}
}

// Injector pushes one render request per slot on mount.
type Injector struct {
	development bool
	queue       Queue
}

// NewInjector creates an injector. A development build never pushes.
func NewInjector(development bool, queue Queue) *Injector {
	return &Injector{
		development: development,
		queue:       queue,
	}
}

// Inject pushes a request for every slot and returns how many were accepted.
// Failures are logged and never returned.
func (injector *Injector) Inject(slots []Slot) int {
	if injector.development || injector.queue == nil {
		log.Debug().Bool("development", injector.development).Msg("ad injection skipped")
		return 0
	}

	accepted := 0
	for _, slot := range slots {
		if err := injector.push(slot); err != nil {
			log.Error().Err(err).Str("slot", slot.ID).Msg("ad render request failed")
			continue
		}
		accepted++
	}
	return accepted
}

func (injector *Injector) push(slot Slot) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("ad queue panic: %v", recovered)
		}
	}()

	request := Request{ID: uuid.New(), Slot: slot}
	if err := injector.queue.Push(request); err != nil {
		return fmt.Errorf("push ad request: %w", err)
	}
	return nil
}
