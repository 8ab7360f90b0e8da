package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/domain/schedule"
	"assistec_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidTechnicianID = errors.New("invalid technician id")
	ErrInvalidDateWindow   = errors.New("window end precedes start")
	ErrSlotNotInCatalog    = errors.New("time is not a business slot")
	ErrSlotConflict        = errors.New("slot conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// DayAvailability is the scheduling view for one technician and one date.
//
// RecommendedSlot is advisory only; the dispatcher still submits an explicit
// choice which is re-validated by Book.
type DayAvailability struct {
	Date            string
	BookedSlots     []string
	AvailableSlots  []string
	RecommendedSlot string
	Occupancy       schedule.DayOccupancy
}

// IAvailabilityUseCase computes offerable slots and owns the commit guard
// that serializes bookings per technician and date.

type IAvailabilityUseCase interface {
	ComputeAvailability(ctx context.Context, technicianID string, date time.Time) (DayAvailability, error)
	ComputeMonthlyDensity(ctx context.Context, technicianID string, firstDay, lastDay time.Time) (map[string]int, error)
	Book(ctx context.Context, orderID, technicianID string, at time.Time) (entities.Appointment, error)
	ReleaseSlot(ctx context.Context, technicianID string, at time.Time) error
	Release(ctx context.Context, orderID string) error
}

type AvailabilityUseCase struct {
	appointments interfaces.IAppointmentRepository
	logger       *zap.SugaredLogger
	now          func() time.Time

	mu    sync.Mutex
	locks map[string]*slotLock
}

// slotLock is reference-counted so entries can be dropped from the map once
// the last booking for that technician/date finishes.
type slotLock struct {
	mu   sync.Mutex
	refs int
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(appointments interfaces.IAppointmentRepository, logger *zap.SugaredLogger) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		appointments: appointments,
		logger:       logger,
		now:          time.Now,
		locks:        map[string]*slotLock{},
	}
}

// ComputeAvailability re-reads the technician's bookings for the date and
// subtracts them from the slot catalog, preserving catalog order. For today,
// the recommendation is the first free slot after the wall clock; otherwise
// (or when nothing is left later today) the first free slot.
func (u *AvailabilityUseCase) ComputeAvailability(ctx context.Context, technicianID string, date time.Time) (DayAvailability, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return DayAvailability{}, ErrInvalidTechnicianID
	}

	from, to := dayBounds(date)
	booked, err := u.appointments.ListByTechnicianAndRange(ctx, technicianID, from, to)
	if err != nil {
		return DayAvailability{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	bookedSet := make(map[string]struct{}, len(booked))
	bookedSlots := make([]string, 0, len(booked))
	for _, a := range booked {
		slot := schedule.SlotOf(a.ScheduledAt)
		if _, seen := bookedSet[slot]; !seen {
			bookedSet[slot] = struct{}{}
			bookedSlots = append(bookedSlots, slot)
		}
	}

	available := make([]string, 0, schedule.SlotsPerDay)
	for _, slot := range schedule.Slots() {
		if _, taken := bookedSet[slot]; !taken {
			available = append(available, slot)
		}
	}

	return DayAvailability{
		Date:            date.Format("2006-01-02"),
		BookedSlots:     bookedSlots,
		AvailableSlots:  available,
		RecommendedSlot: u.recommend(date, available),
		Occupancy:       schedule.ClassifyDay(len(bookedSet)),
	}, nil
}

func (u *AvailabilityUseCase) recommend(date time.Time, available []string) string {
	if len(available) == 0 {
		return ""
	}
	now := u.now().UTC()
	if date.Year() == now.Year() && date.YearDay() == now.YearDay() {
		wallClock := now.Format("15:04")
		for _, slot := range available {
			if slot > wallClock {
				return slot
			}
		}
	}
	return available[0]
}

// ComputeMonthlyDensity counts appointments per calendar day inside the
// window. Days without bookings are absent from the map.
func (u *AvailabilityUseCase) ComputeMonthlyDensity(ctx context.Context, technicianID string, firstDay, lastDay time.Time) (map[string]int, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if lastDay.Before(firstDay) {
		return nil, ErrInvalidDateWindow
	}

	from, _ := dayBounds(firstDay)
	_, to := dayBounds(lastDay)
	booked, err := u.appointments.ListByTechnicianAndRange(ctx, technicianID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	density := make(map[string]int, len(booked))
	for _, a := range booked {
		density[a.ScheduledAt.Format("2006-01-02")]++
	}
	return density, nil
}

// Book is the commit guard. Bookings for the same technician and date are
// serialized through a keyed mutex, availability is re-read inside the
// critical section, and the store's conditional put is the last line of
// defense against writers outside this process.
func (u *AvailabilityUseCase) Book(ctx context.Context, orderID, technicianID string, at time.Time) (entities.Appointment, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Appointment{}, ErrInvalidTechnicianID
	}
	// Slot identity is derived in UTC. Without this, the same instant
	// expressed in two offsets would produce two keys and defeat both
	// exclusivity guards.
	at = at.UTC()
	slot := schedule.SlotOf(at)
	if !schedule.IsBusinessSlot(slot) {
		return entities.Appointment{}, ErrSlotNotInCatalog
	}

	key := technicianID + "#" + at.Format("2006-01-02")
	lock := u.acquireLock(key)
	lock.mu.Lock()
	defer func() {
		lock.mu.Unlock()
		u.releaseLock(key, lock)
	}()

	day, err := u.ComputeAvailability(ctx, technicianID, at)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !contains(day.AvailableSlots, slot) {
		u.logger.Infow("slot no longer available", "technician_id", technicianID, "slot", slot, "date", day.Date)
		return entities.Appointment{}, ErrSlotConflict
	}

	appt := entities.Appointment{
		ID:           entities.AppointmentKey(technicianID, at),
		OrderID:      orderID,
		TechnicianID: technicianID,
		ScheduledAt:  at.Truncate(time.Minute),
		CreatedAt:    u.now().UTC(),
	}
	created, err := u.appointments.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, interfaces.ErrSlotTaken) {
			return entities.Appointment{}, ErrSlotConflict
		}
		return entities.Appointment{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return created, nil
}

// ReleaseSlot drops one specific technician/date/time booking. Used when a
// reschedule supersedes the previous appointment.
func (u *AvailabilityUseCase) ReleaseSlot(ctx context.Context, technicianID string, at time.Time) error {
	if err := u.appointments.Delete(ctx, entities.AppointmentKey(technicianID, at.UTC())); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

// Release drops the appointment held by an order, if any. Safe to call when
// nothing is booked.
func (u *AvailabilityUseCase) Release(ctx context.Context, orderID string) error {
	if err := u.appointments.ReleaseByOrderID(ctx, orderID); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}

func (u *AvailabilityUseCase) acquireLock(key string) *slotLock {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.locks[key]
	if !ok {
		lock = &slotLock{}
		u.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (u *AvailabilityUseCase) releaseLock(key string, lock *slotLock) {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(u.locks, key)
	}
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
