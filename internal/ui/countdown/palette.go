package countdown

import (
	"fmt"
	"image/color"

	"zoneclock/internal/core/model"
)

// WarningSeconds is the remaining time at which the display starts flashing.
const WarningSeconds = 3

var (
	Cyan        = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Red         = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Black       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Transparent = color.NRGBA{}
)

// Palette is the foreground and background of the countdown digits.
type Palette struct {
	Foreground color.NRGBA
	Background color.NRGBA
	Warning    bool
}

// PaletteFor returns the digit colours for a countdown.
func PaletteFor(countdown model.Countdown) Palette {
	if countdown.Running && countdown.Time <= WarningSeconds {
		if countdown.Time%2 == 0 {
			return Palette{Foreground: Black, Background: Red, Warning: true}
		}
		return Palette{Foreground: White, Background: Black, Warning: true}
	}
	return Palette{Foreground: Cyan, Background: Transparent}
}

// Digits renders the remaining seconds as shown on the card.
func Digits(countdown model.Countdown) string {
	seconds := countdown.Time
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("⏳ %02d", seconds)
}

// Status is the short tray text for the countdown state.
func Status(countdown model.Countdown, present bool) string {
	if !present {
		return "No countdown"
	}
	if countdown.Message != "" {
		return countdown.Message
	}
	return Digits(countdown)
}
