package schedule

import "fmt"

const (
	routeFirstHour = 9
	routeLastHour  = 17
)

// SuggestRouteSlot derives a default appointment time for the stop at the
// given zero-based position in a technician's daily route: the day starts at
// 09:00, one stop per hour, clamped to 17:00 so no suggestion leaves business
// hours. The suggestion is advisory; bookings still go through the
// availability commit guard.
func SuggestRouteSlot(position int) string {
	hour := routeFirstHour + position
	if position < 0 {
		hour = routeFirstHour
	}
	if hour > routeLastHour {
		hour = routeLastHour
	}
	return fmt.Sprintf("%02d:00", hour)
}
