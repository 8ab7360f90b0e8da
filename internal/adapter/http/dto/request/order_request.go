package request

import (
	"strings"
	"time"
)

// CreateOrderRequest is the intake payload: the attendance type is fixed here
// and for the rest of the order's life.
type CreateOrderRequest struct {
	AttendanceType string `json:"attendance_type" binding:"required"`
}

func (r CreateOrderRequest) ResolveAttendanceType() string {
	return strings.TrimSpace(r.AttendanceType)
}

// TransitionRequest asks for one status change. Status is the target; the
// remaining fields are only read by the guards that need them (scheduling,
// billing, completion).
type TransitionRequest struct {
	Status        string     `json:"status" binding:"required"`
	TechnicianID  string     `json:"technician_id"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	FinalCost     *float64   `json:"final_cost"`
	PaymentStatus string     `json:"payment_status"`
}

func (r TransitionRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
