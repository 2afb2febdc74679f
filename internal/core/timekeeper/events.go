package timekeeper

import (
	"time"

	"zoneclock/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick             EventType = "tick"
	EventCountdownChanged EventType = "countdown_changed"
	EventFinished         EventType = "finished"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type         EventType
	Countdown    model.Countdown
	HasCountdown bool
	At           time.Time
}
