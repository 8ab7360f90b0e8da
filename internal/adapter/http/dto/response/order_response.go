package response

import (
	"time"

	"assistec_os/internal/domain/entities"
)

type OrderResponse struct {
	ID              string     `json:"id"`
	AttendanceType  string     `json:"attendance_type"`
	Status          string     `json:"status"`
	CurrentLocation string     `json:"current_location"`
	NeedsPickup     bool       `json:"needs_pickup"`
	TechnicianID    string     `json:"technician_id,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	FinalCost       *float64   `json:"final_cost,omitempty"`
	PaymentStatus   string     `json:"payment_status,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		AttendanceType:  string(o.AttendanceType),
		Status:          string(o.Status),
		CurrentLocation: string(o.CurrentLocation),
		NeedsPickup:     o.NeedsPickup,
		TechnicianID:    o.TechnicianID,
		ScheduledAt:     o.ScheduledAt,
		FinalCost:       o.FinalCost,
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
