package model

// CountdownSeconds is the fixed starting value of every countdown.
const CountdownSeconds = 10

// FinishedMessage is shown once a countdown reaches zero.
const FinishedMessage = "⏰ Time's up!"

// Countdown is the single timed entity counting down from CountdownSeconds.
type Countdown struct {
	// ID is the creation timestamp in Unix milliseconds.
	ID      int64
	Time    int
	Running bool
	Message string
	// Animate marks the finished visual state.
	Animate bool
}

// Finished reports whether the countdown has reached zero.
func (countdown Countdown) Finished() bool {
	return !countdown.Running && countdown.Time == 0
}
