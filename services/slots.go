package services

import (
	"time"

	"barberbook-backend/models"
)

// GenerateSlots produces the ordered candidate start times for a
// working-hours interval. A malformed interval falls back to
// 09:00-18:00 and a non-positive duration to 30 minutes, so the
// function always yields something sensible for whatever the config
// sheet contains. A slot is only emitted if the full appointment fits
// before the interval end, so no partial trailing slot is ever offered.
func GenerateSlots(interval string, durationMinutes int) []string {
	start, end, err := models.ParseInterval(interval)
	if err != nil {
		start, end, _ = models.ParseInterval(models.DefaultInterval)
	}
	if durationMinutes <= 0 {
		durationMinutes = models.DefaultDuration
	}

	step := time.Duration(durationMinutes) * time.Minute
	var slots []string
	for t := start; !t.Add(step).After(end); t = t.Add(step) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

// fallbackSlots is served when availability cannot be computed at all:
// a standard working day with the 12:00-14:00 lunch break removed.
var fallbackSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// FallbackSlots returns the hardcoded slot list used when the store or
// configuration is unreachable, so availability lookups never hard-fail
// for the booking surface
func FallbackSlots() []string {
	out := make([]string, len(fallbackSlots))
	copy(out, fallbackSlots)
	return out
}
