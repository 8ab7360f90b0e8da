package entities

import "time"

// AttendanceType says where the repair happens: at the client's address or at
// the workshop after a pickup. It is fixed at intake and never changes; the
// workflow graph that applies to the order is selected by this value.

type AttendanceType string

const (
	AttendanceOnSite          AttendanceType = "on_site"
	AttendancePickupRepair    AttendanceType = "pickup_repair"
	AttendancePickupDiagnosis AttendanceType = "pickup_diagnosis"
)

func (a AttendanceType) Valid() bool {
	switch a {
	case AttendanceOnSite, AttendancePickupRepair, AttendancePickupDiagnosis:
		return true
	}
	return false
}

// NeedsPickup is derived once at intake and copied onto the order.
func (a AttendanceType) NeedsPickup() bool {
	return a == AttendancePickupRepair || a == AttendancePickupDiagnosis
}

// OrderStatus is the closed set of lifecycle states. The legal edges between
// them live in the workflow package, keyed by attendance type.

type OrderStatus string

const (
	StatusPending               OrderStatus = "pending"
	StatusScheduled             OrderStatus = "scheduled"
	StatusScheduledCollection   OrderStatus = "scheduled_collection"
	StatusInProgress            OrderStatus = "in_progress"
	StatusOnTheWay              OrderStatus = "on_the_way"
	StatusCollected             OrderStatus = "collected"
	StatusCollectedForDiagnosis OrderStatus = "collected_for_diagnosis"
	StatusAtWorkshop            OrderStatus = "at_workshop"
	StatusReceivedAtWorkshop    OrderStatus = "received_at_workshop"
	StatusDiagnosisCompleted    OrderStatus = "diagnosis_completed"
	StatusQuoteSent             OrderStatus = "quote_sent"
	StatusAwaitingQuoteApproval OrderStatus = "awaiting_quote_approval"
	StatusQuoteApproved         OrderStatus = "quote_approved"
	StatusQuoteRejected         OrderStatus = "quote_rejected"
	StatusReadyForReturn        OrderStatus = "ready_for_return"
	StatusNeedsWorkshop         OrderStatus = "needs_workshop"
	StatusReadyForDelivery      OrderStatus = "ready_for_delivery"
	StatusCollectedForDelivery  OrderStatus = "collected_for_delivery"
	StatusOnTheWayToDeliver     OrderStatus = "on_the_way_to_deliver"
	StatusPaymentPending        OrderStatus = "payment_pending"
	StatusCompleted             OrderStatus = "completed"
	StatusCancelled             OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OrderLocation tracks where the equipment physically is. It is recomputed by
// the workflow on every transition, never set directly.

type OrderLocation string

const (
	LocationClient    OrderLocation = "client"
	LocationWorkshop  OrderLocation = "workshop"
	LocationDelivered OrderLocation = "delivered"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ServiceOrder is a unit of repair work.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Status, CurrentLocation and UpdatedAt are mutated only through validated
// workflow transitions; a failed transition leaves the order untouched.

type ServiceOrder struct {
	ID              string         `json:"id"`
	AttendanceType  AttendanceType `json:"attendance_type"`
	Status          OrderStatus    `json:"status"`
	CurrentLocation OrderLocation  `json:"current_location"`
	NeedsPickup     bool           `json:"needs_pickup"`

	TechnicianID string     `json:"technician_id,omitempty"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`

	FinalCost     *float64      `json:"final_cost,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusChangedEvent is published after every committed transition so that
// downstream systems (messaging, analytics) can react. The core never delivers
// notifications itself.
type StatusChangedEvent struct {
	OrderID        string      `json:"order_id"`
	PreviousStatus OrderStatus `json:"previous_status"`
	NewStatus      OrderStatus `json:"new_status"`
	OccurredAt     time.Time   `json:"occurred_at"`
}
