package entities

import (
	"fmt"
	"time"
)

// Appointment materializes the booking of a ServiceOrder to a technician at a
// specific slot. One-to-one with an order once scheduled; a reschedule writes
// the new appointment and releases the old one.
//
// Storage model (DynamoDB):
//   - PK: id = technician_id#YYYY-MM-DD#HH:MM
//
// Encoding the slot into the key lets a conditional put enforce the
// one-booking-per-slot invariant at the store, independent of any in-process
// serialization.

type Appointment struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	TechnicianID string    `json:"technician_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// AppointmentKey builds the slot-exclusive primary key. The time is rendered
// in UTC so the same instant always yields the same key, whatever offset the
// caller carried.
func AppointmentKey(technicianID string, at time.Time) string {
	at = at.UTC()
	return fmt.Sprintf("%s#%s#%s", technicianID, at.Format("2006-01-02"), at.Format("15:04"))
}
