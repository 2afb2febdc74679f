package zoneclock

import (
	"fmt"
	"time"

	"github.com/jeandeaual/go-locale"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// HourCycle selects between 12 and 24 hour rendering.
type HourCycle int

const (
	Hour24 HourCycle = iota
	Hour12
)

const (
	layout12 = "3:04:05 PM"
	layout24 = "15:04:05"
)

// Regions whose default time-of-day format uses a 12-hour clock.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PH": true,
	"PK": true, "BD": true, "EG": true, "SA": true, "MY": true, "CO": true,
	"MX": true, "IE": true,
}

// Formatter renders wall-clock time for a timezone identifier.
type Formatter struct {
	cycle HourCycle
}

// NewFormatter returns a formatter for the given BCP 47 locale tag.
func NewFormatter(tag string) Formatter {
	return Formatter{cycle: CycleForLocale(tag)}
}

// NewHostFormatter detects the host locale.
func NewHostFormatter() Formatter {
	tag, err := locale.GetLocale()
	if err != nil {
		log.Warn().Err(err).Msg("detect host locale")
		tag = "en-US"
	}
	return NewFormatter(tag)
}

// Cycle returns the hour cycle in use.
func (formatter Formatter) Cycle() HourCycle {
	return formatter.cycle
}

// Format renders now in the given zone. An unknown zone is returned as an error
// from the location loader.
func (formatter Formatter) Format(now time.Time, zone string) (string, error) {
	location, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("load location %q: %w", zone, err)
	}
	if formatter.cycle == Hour12 {
		return now.In(location).Format(layout12), nil
	}
	return now.In(location).Format(layout24), nil
}

// CycleForLocale picks the hour cycle for a locale tag such as "en-US" or "de_DE".
func CycleForLocale(tag string) HourCycle {
	parsed, err := language.Parse(normalizeTag(tag))
	if err != nil {
		return Hour24
	}
	region, confidence := parsed.Region()
	if confidence == language.No {
		return Hour24
	}
	if twelveHourRegions[region.String()] {
		return Hour12
	}
	return Hour24
}

func normalizeTag(tag string) string {
	runes := []rune(tag)
	for i, r := range runes {
		if r == '_' {
			runes[i] = '-'
		}
		if r == '.' || r == '@' {
			return string(runes[:i])
		}
	}
	return string(runes)
}
