package schedule

// DayOccupancy is the coarse classification of how booked a technician's day
// is, used by calendar affordances.

type DayOccupancy string

const (
	DayAvailable DayOccupancy = "available"
	DayPartial   DayOccupancy = "partial"
	DayFull      DayOccupancy = "full"
)

// ClassifyDay maps an appointment count to an occupancy class. Full means
// every catalog slot is taken.
func ClassifyDay(count int) DayOccupancy {
	switch {
	case count <= 0:
		return DayAvailable
	case count < SlotsPerDay:
		return DayPartial
	default:
		return DayFull
	}
}
