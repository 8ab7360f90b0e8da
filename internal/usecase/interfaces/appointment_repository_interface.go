package interfaces

import (
	"context"
	"errors"
	"time"

	"assistec_os/internal/domain/entities"
)

// ErrSlotTaken is returned by Create when another appointment already holds
// the technician/date/time key. It is the store-level half of the slot
// exclusivity invariant; the availability use case maps it to its own
// conflict sentinel.
var ErrSlotTaken = errors.New("appointment slot already taken")

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// ListByTechnicianAndRange must always hit the store; availability
// computations depend on fresh reads and nothing may be cached across calls.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	ListByTechnicianAndRange(ctx context.Context, technicianID string, from, to time.Time) ([]entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	ReleaseByOrderID(ctx context.Context, orderID string) error
}
