package response

import (
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/domain/schedule"
	"assistec_os/internal/usecase"
)

type TechnicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{ID: t.ID, Name: t.Name, Active: t.Active, CreatedAt: t.CreatedAt}
}

func FromTechnicians(list []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTechnician(t))
	}
	return out
}

type AvailabilityResponse struct {
	TechnicianID    string   `json:"technician_id"`
	Date            string   `json:"date"`
	BookedSlots     []string `json:"booked_slots"`
	AvailableSlots  []string `json:"available_slots"`
	RecommendedSlot string   `json:"recommended_slot,omitempty"`
	Occupancy       string   `json:"occupancy"`
}

func FromDayAvailability(technicianID string, day usecase.DayAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		TechnicianID:    technicianID,
		Date:            day.Date,
		BookedSlots:     day.BookedSlots,
		AvailableSlots:  day.AvailableSlots,
		RecommendedSlot: day.RecommendedSlot,
		Occupancy:       string(day.Occupancy),
	}
}

type DensityResponse struct {
	TechnicianID string            `json:"technician_id"`
	Month        string            `json:"month"`
	Days         map[string]int    `json:"days"`
	Occupancy    map[string]string `json:"occupancy"`
}

func FromDensity(technicianID, month string, days map[string]int) DensityResponse {
	occupancy := make(map[string]string, len(days))
	for day, count := range days {
		occupancy[day] = string(schedule.ClassifyDay(count))
	}
	return DensityResponse{
		TechnicianID: technicianID,
		Month:        month,
		Days:         days,
		Occupancy:    occupancy,
	}
}

type RouteSlotResponse struct {
	Position      int    `json:"position"`
	SuggestedTime string `json:"suggested_time"`
}
