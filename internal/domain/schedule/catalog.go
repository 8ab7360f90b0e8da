package schedule

import (
	"fmt"
	"time"
)

// The slot catalog is the universe of bookable clock times for one working
// day. The 12:00 gap is the lunch break and is intentionally not offered.

var catalog = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// SlotsPerDay equals len(Slots()); a day with this many bookings is full.
const SlotsPerDay = 9

const slotLayout = "15:04"

// Slots returns the catalog in booking order. The caller owns the returned
// slice.
func Slots() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsBusinessSlot reports whether the label is one of the bookable times.
func IsBusinessSlot(label string) bool {
	for _, s := range catalog {
		if s == label {
			return true
		}
	}
	return false
}

// SlotOf truncates a timestamp to the minute and formats it as a slot label.
// The result is only catalog-aligned if the original booking was.
func SlotOf(t time.Time) string {
	return t.Truncate(time.Minute).Format(slotLayout)
}

// SlotTime combines a calendar day with a slot label.
func SlotTime(day time.Time, label string) (time.Time, error) {
	if !IsBusinessSlot(label) {
		return time.Time{}, fmt.Errorf("not a business slot: %s", label)
	}
	parsed, err := time.Parse(slotLayout, label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
