package ads

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueue struct {
	requests []Request
	failOn   string
	panicOn  string
}

func (queue *recordingQueue) Push(request Request) error {
	if request.Slot.ID == queue.panicOn {
		panic("queue not initialised")
	}
	if request.Slot.ID == queue.failOn {
		return errors.New("blocked by host")
	}
	queue.requests = append(queue.requests, request)
	return nil
}

func TestInjectPushesOnePerSlot(t *testing.T) {
	queue := &recordingQueue{}
	injector := NewInjector(false, queue)

	accepted := injector.Inject([]Slot{DefaultSlot(), DefaultSlot()})

	assert.Equal(t, 2, accepted)
	require.Len(t, queue.requests, 2)
	assert.NotEqual(t, uuid.Nil, queue.requests[0].ID)
	assert.NotEqual(t, queue.requests[0].ID, queue.requests[1].ID)
	assert.Equal(t, DefaultSlot(), queue.requests[0].Slot)
}

func TestInjectSkippedInDevelopment(t *testing.T) {
	queue := &recordingQueue{}
	assert.Zero(t, NewInjector(true, queue).Inject([]Slot{DefaultSlot()}))
	assert.Empty(t, queue.requests)
}

func TestInjectSkippedWithoutQueue(t *testing.T) {
	assert.Zero(t, NewInjector(false, nil).Inject([]Slot{DefaultSlot()}))
}

func TestInjectIsolatesFailures(t *testing.T) {
	queue := &recordingQueue{failOn: "bad", panicOn: "worse"}
	injector := NewInjector(false, queue)

	slots := []Slot{{ID: "bad"}, {ID: "worse"}, {ID: "good"}}
	var accepted int
	assert.NotPanics(t, func() { accepted = injector.Inject(slots) })

	assert.Equal(t, 1, accepted)
	require.Len(t, queue.requests, 1)
	assert.Equal(t, "good", queue.requests[0].Slot.ID)
}
