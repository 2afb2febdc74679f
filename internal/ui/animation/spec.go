package animation

// PulseSpec describes one pulse cycle as a sequence of scale keyframes.
type PulseSpec struct {
	Frames []float32
}

// Keyframes returns the frames of a grow-then-shrink cycle from 1 to peak.
func Keyframes(peak float32, steps int) PulseSpec {
	if steps < 1 {
		steps = 1
	}
	frames := make([]float32, 0, steps*2)
	for i := 0; i <= steps; i++ {
		frames = append(frames, 1+(peak-1)*float32(i)/float32(steps))
	}
	for i := steps - 1; i > 0; i-- {
		frames = append(frames, 1+(peak-1)*float32(i)/float32(steps))
	}
	return PulseSpec{Frames: frames}
}
