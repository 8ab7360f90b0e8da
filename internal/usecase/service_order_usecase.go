package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/domain/workflow"
	"assistec_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound         = errors.New("service order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidAttendanceType = errors.New("invalid attendance type")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrTechnicianNotFound    = errors.New("technician not found")
	ErrTechnicianInactive    = errors.New("technician inactive")
	ErrScheduledInPast       = errors.New("scheduled time is in the past")
)

// TransitionParams carries the optional fields a transition may set. Fields
// left zero keep the order's current values.
type TransitionParams struct {
	TechnicianID  string
	ScheduledAt   *time.Time
	FinalCost     *float64
	PaymentStatus entities.PaymentStatus
}

// IServiceOrderUseCase is the single authority over the order lifecycle.
//
// ApplyTransition validates the edge and its guard conditions, recomputes the
// equipment location, stamps updated_at and emits a status-changed event. A
// failed transition leaves the order untouched.

type IServiceOrderUseCase interface {
	CreateOrder(ctx context.Context, attendanceType entities.AttendanceType) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ApplyTransition(ctx context.Context, orderID string, target entities.OrderStatus, params TransitionParams) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, orderID string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders       interfaces.IServiceOrderRepository
	technicians  interfaces.ITechnicianRepository
	availability IAvailabilityUseCase
	publisher    interfaces.IOrderEventPublisher
	logger       *zap.SugaredLogger
	now          func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	technicians interfaces.ITechnicianRepository,
	availability IAvailabilityUseCase,
	publisher interfaces.IOrderEventPublisher,
	logger *zap.SugaredLogger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:       orders,
		technicians:  technicians,
		availability: availability,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateOrder is the intake entry point: a pending order with its attendance
// type fixed forever and needs_pickup derived from it.
func (u *ServiceOrderUseCase) CreateOrder(ctx context.Context, attendanceType entities.AttendanceType) (entities.ServiceOrder, error) {
	if !attendanceType.Valid() {
		return entities.ServiceOrder{}, ErrInvalidAttendanceType
	}

	now := u.now().UTC()
	o := entities.ServiceOrder{
		ID:              uuid.NewString(),
		AttendanceType:  attendanceType,
		Status:          entities.StatusPending,
		CurrentLocation: entities.LocationClient,
		NeedsPickup:     attendanceType.NeedsPickup(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	u.logger.Infow("service order created", "order_id", created.ID, "attendance_type", created.AttendanceType)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) ApplyTransition(ctx context.Context, orderID string, target entities.OrderStatus, params TransitionParams) (entities.ServiceOrder, error) {
	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if target == entities.StatusCancelled {
		return u.cancel(ctx, order)
	}
	if order.Status.Terminal() {
		return entities.ServiceOrder{}, fmt.Errorf("%w: order is %s", ErrInvalidTransition, order.Status)
	}

	// Moving the date/technician while already scheduled re-runs only the
	// slot guard and appointment materialization; the status stays put.
	reschedule := target == order.Status && workflow.SchedulingStatus(target)
	if !reschedule && !workflow.CanTransition(order.AttendanceType, order.Status, target) {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %s -> %s for %s", ErrInvalidTransition, order.Status, target, order.AttendanceType)
	}

	updated := order
	switch {
	case workflow.SchedulingStatus(target):
		updated, err = u.applyScheduling(ctx, updated, params, reschedule)
	case target == entities.StatusPaymentPending:
		updated, err = applyFinalCost(updated, params)
	case target == entities.StatusCompleted:
		updated, err = applyCompletion(updated, params)
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	previous := order.Status
	updated.Status = target
	updated.CurrentLocation = workflow.LocationFor(updated.AttendanceType, target, updated.CurrentLocation)
	updated.UpdatedAt = u.now().UTC()

	saved, err := u.orders.Save(ctx, updated)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	u.publish(ctx, saved, previous)
	return saved, nil
}

// Cancel is legal from any non-terminal state and idempotent: repeating it on
// a cancelled or completed order is a no-op success so client retries stay
// safe.
func (u *ServiceOrderUseCase) Cancel(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.cancel(ctx, order)
}

func (u *ServiceOrderUseCase) cancel(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	if order.Status.Terminal() {
		return order, nil
	}

	if err := u.availability.Release(ctx, order.ID); err != nil {
		return entities.ServiceOrder{}, err
	}

	previous := order.Status
	order.Status = entities.StatusCancelled
	order.CurrentLocation = workflow.LocationFor(order.AttendanceType, entities.StatusCancelled, order.CurrentLocation)
	order.UpdatedAt = u.now().UTC()

	saved, err := u.orders.Save(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	u.publish(ctx, saved, previous)
	return saved, nil
}

// applyScheduling runs the scheduling guard: technician present and active,
// date present, slot-aligned and not in the past, slot still free. The new
// appointment is booked before the superseded one is dropped so a failed
// booking changes nothing.
func (u *ServiceOrderUseCase) applyScheduling(ctx context.Context, order entities.ServiceOrder, params TransitionParams, reschedule bool) (entities.ServiceOrder, error) {
	technicianID := strings.TrimSpace(params.TechnicianID)
	if technicianID == "" {
		technicianID = order.TechnicianID
	}
	scheduledAt := params.ScheduledAt
	if scheduledAt == nil {
		scheduledAt = order.ScheduledAt
	}
	if technicianID == "" || scheduledAt == nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: technician_id and scheduled_at", ErrMissingRequiredField)
	}
	// Normalize before any slot identity is derived, so clients sending the
	// same instant in different offsets compete for the same appointment.
	utc := scheduledAt.UTC()
	scheduledAt = &utc
	if scheduledAt.Before(u.now()) {
		return entities.ServiceOrder{}, ErrScheduledInPast
	}

	tech, err := u.technicians.GetByID(ctx, technicianID)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if tech.ID == "" {
		return entities.ServiceOrder{}, ErrTechnicianNotFound
	}
	if !tech.Active {
		return entities.ServiceOrder{}, ErrTechnicianInactive
	}

	sameSlot := reschedule && order.ScheduledAt != nil &&
		order.TechnicianID == technicianID && order.ScheduledAt.Equal(*scheduledAt)
	if !sameSlot {
		if _, err := u.availability.Book(ctx, order.ID, technicianID, *scheduledAt); err != nil {
			return entities.ServiceOrder{}, err
		}
		if reschedule && order.ScheduledAt != nil {
			if err := u.availability.ReleaseSlot(ctx, order.TechnicianID, *order.ScheduledAt); err != nil {
				u.logger.Warnw("failed releasing superseded appointment", "order_id", order.ID, "err", err)
			}
		}
	}

	order.TechnicianID = technicianID
	order.ScheduledAt = scheduledAt
	return order, nil
}

func applyFinalCost(order entities.ServiceOrder, params TransitionParams) (entities.ServiceOrder, error) {
	if params.FinalCost != nil {
		order.FinalCost = params.FinalCost
	}
	if order.FinalCost == nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: final_cost", ErrMissingRequiredField)
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = entities.PaymentStatusPending
	}
	return order, nil
}

func applyCompletion(order entities.ServiceOrder, params TransitionParams) (entities.ServiceOrder, error) {
	if params.FinalCost != nil {
		order.FinalCost = params.FinalCost
	}
	if params.PaymentStatus != "" {
		order.PaymentStatus = params.PaymentStatus
	}
	if order.FinalCost == nil {
		return entities.ServiceOrder{}, fmt.Errorf("%w: final_cost", ErrMissingRequiredField)
	}
	if order.PaymentStatus == "" {
		return entities.ServiceOrder{}, fmt.Errorf("%w: payment_status", ErrMissingRequiredField)
	}
	// Pickup orders always settle before completion. On-site orders settle
	// too when they took the workshop detour: completing from payment_pending
	// or ready_for_return means the workshop billed something.
	mustBePaid := order.NeedsPickup ||
		order.Status == entities.StatusPaymentPending ||
		order.Status == entities.StatusReadyForReturn
	if mustBePaid && order.PaymentStatus != entities.PaymentStatusPaid {
		return entities.ServiceOrder{}, fmt.Errorf("%w: payment_status must be %s", ErrMissingRequiredField, entities.PaymentStatusPaid)
	}
	return order, nil
}

func (u *ServiceOrderUseCase) publish(ctx context.Context, order entities.ServiceOrder, previous entities.OrderStatus) {
	if u.publisher == nil {
		return
	}
	ev := entities.StatusChangedEvent{
		OrderID:        order.ID,
		PreviousStatus: previous,
		NewStatus:      order.Status,
		OccurredAt:     order.UpdatedAt,
	}
	if err := u.publisher.PublishStatusChanged(ctx, ev); err != nil {
		u.logger.Warnw("failed publishing status change", "order_id", order.ID, "err", err)
	}
}
