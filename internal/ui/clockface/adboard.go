package clockface

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"zoneclock/internal/ads"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ErrNoFreeSlot is returned when every placeholder already holds an ad.
var ErrNoFreeSlot = errors.New("no free ad slot")

type adStrip struct {
	slot     ads.Slot
	box      *fyne.Container
	rendered bool
}

// AdBoard owns the ad placeholders and renders requests pushed to it.
type AdBoard struct {
	mu     sync.Mutex
	strips []*adStrip
}

// NewAdBoard creates count empty placeholders for slot.
func NewAdBoard(slot ads.Slot, count int) *AdBoard {
	board := &AdBoard{}
	for i := 0; i < count; i++ {
		board.strips = append(board.strips, &adStrip{
			slot: slot,
			box:  container.NewStack(),
		})
	}
	return board
}

// Slots returns one descriptor per placeholder.
func (board *AdBoard) Slots() []ads.Slot {
	board.mu.Lock()
	defer board.mu.Unlock()
	slots := make([]ads.Slot, 0, len(board.strips))
	for _, strip := range board.strips {
		slots = append(slots, strip.slot)
	}
	return slots
}

// Placeholder returns the canvas object of the i-th strip.
func (board *AdBoard) Placeholder(index int) fyne.CanvasObject {
	board.mu.Lock()
	defer board.mu.Unlock()
	return board.strips[index].box
}

// Push renders the request into the first empty strip of the same slot.
func (board *AdBoard) Push(request ads.Request) error {
	board.mu.Lock()
	defer board.mu.Unlock()

	for _, strip := range board.strips {
		if strip.rendered || strip.slot.ID != request.Slot.ID {
			continue
		}
		strip.rendered = true
		strip.box.Objects = []fyne.CanvasObject{renderAd(request)}
		strip.box.Refresh()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNoFreeSlot, request.Slot.ID)
}

// Rendered returns how many strips hold an ad.
func (board *AdBoard) Rendered() int {
	board.mu.Lock()
	defer board.mu.Unlock()
	count := 0
	for _, strip := range board.strips {
		if strip.rendered {
			count++
		}
	}
	return count
}

func renderAd(request ads.Request) fyne.CanvasObject {
	frame := canvas.NewRectangle(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	frame.SetMinSize(fyne.NewSize(320, 60))
	frame.CornerRadius = 6

	caption := canvas.NewText("Advertisement · "+request.Slot.ID, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff})
	caption.Alignment = fyne.TextAlignCenter
	caption.TextSize = 12
	return container.NewStack(frame, container.NewCenter(caption))
}
