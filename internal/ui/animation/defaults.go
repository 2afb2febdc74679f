package animation

import "time"

// DefaultConfig returns the warning pulse used for the last seconds of a countdown.
func DefaultConfig() Config {
	return Config{
		Period: time.Second,
		Peak:   1.2,
		Steps:  5,
	}
}
