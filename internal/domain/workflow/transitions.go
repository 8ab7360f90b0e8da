package workflow

import "assistec_os/internal/domain/entities"

// The lifecycle is a DAG kept as plain data so the whole graph is testable in
// one place. Each attendance type has its own edge set; cancellation is not an
// edge here because it is legal from every non-terminal state and handled by
// the use case directly.

var transitions = map[entities.AttendanceType]map[entities.OrderStatus][]entities.OrderStatus{
	entities.AttendanceOnSite: {
		entities.StatusPending:    {entities.StatusScheduled},
		entities.StatusScheduled:  {entities.StatusInProgress},
		entities.StatusInProgress: {entities.StatusNeedsWorkshop, entities.StatusCompleted},

		// Equipment that cannot be fixed on site is collected and runs the
		// diagnosis/quote path at the workshop.
		entities.StatusNeedsWorkshop:       {entities.StatusScheduledCollection},
		entities.StatusScheduledCollection: {entities.StatusCollected},
		entities.StatusCollected:           {entities.StatusAtWorkshop},
		entities.StatusAtWorkshop:          {entities.StatusDiagnosisCompleted},

		entities.StatusDiagnosisCompleted:    {entities.StatusQuoteSent},
		entities.StatusQuoteSent:             {entities.StatusAwaitingQuoteApproval},
		entities.StatusAwaitingQuoteApproval: {entities.StatusQuoteApproved, entities.StatusQuoteRejected},
		entities.StatusQuoteApproved:         {entities.StatusReadyForDelivery},
		entities.StatusQuoteRejected:         {entities.StatusReadyForReturn},
		entities.StatusReadyForReturn:        {entities.StatusCompleted},

		entities.StatusReadyForDelivery:     {entities.StatusCollectedForDelivery},
		entities.StatusCollectedForDelivery: {entities.StatusOnTheWayToDeliver},
		entities.StatusOnTheWayToDeliver:    {entities.StatusPaymentPending},
		entities.StatusPaymentPending:       {entities.StatusCompleted},
	},

	entities.AttendancePickupRepair: {
		entities.StatusPending:             {entities.StatusScheduledCollection},
		entities.StatusScheduledCollection: {entities.StatusOnTheWay},
		entities.StatusOnTheWay:            {entities.StatusCollected},
		entities.StatusCollected:           {entities.StatusAtWorkshop},
		entities.StatusAtWorkshop:          {entities.StatusReadyForDelivery},

		entities.StatusReadyForDelivery:     {entities.StatusCollectedForDelivery},
		entities.StatusCollectedForDelivery: {entities.StatusOnTheWayToDeliver},
		entities.StatusOnTheWayToDeliver:    {entities.StatusPaymentPending},
		entities.StatusPaymentPending:       {entities.StatusCompleted},
	},

	entities.AttendancePickupDiagnosis: {
		entities.StatusPending:                {entities.StatusScheduledCollection},
		entities.StatusScheduledCollection:    {entities.StatusCollectedForDiagnosis},
		entities.StatusCollectedForDiagnosis:  {entities.StatusReceivedAtWorkshop},
		entities.StatusReceivedAtWorkshop:     {entities.StatusDiagnosisCompleted},
		entities.StatusDiagnosisCompleted:     {entities.StatusQuoteSent},
		entities.StatusQuoteSent:              {entities.StatusAwaitingQuoteApproval},
		entities.StatusAwaitingQuoteApproval:  {entities.StatusQuoteApproved, entities.StatusQuoteRejected},
		entities.StatusQuoteApproved:          {entities.StatusReadyForDelivery},
		entities.StatusQuoteRejected:          {entities.StatusReadyForReturn},
		entities.StatusReadyForReturn:         {entities.StatusCompleted},

		entities.StatusReadyForDelivery:     {entities.StatusCollectedForDelivery},
		entities.StatusCollectedForDelivery: {entities.StatusOnTheWayToDeliver},
		entities.StatusOnTheWayToDeliver:    {entities.StatusPaymentPending},
		entities.StatusPaymentPending:       {entities.StatusCompleted},
	},
}

// Successors returns the legal next statuses for an order at the given status.
// The returned slice is shared data; callers must not mutate it.
func Successors(at entities.AttendanceType, from entities.OrderStatus) []entities.OrderStatus {
	return transitions[at][from]
}

// CanTransition reports whether from→to is an edge of the graph selected by
// the attendance type. Cancellation is intentionally not covered here.
func CanTransition(at entities.AttendanceType, from, to entities.OrderStatus) bool {
	for _, next := range transitions[at][from] {
		if next == to {
			return true
		}
	}
	return false
}

// SchedulingStatus reports whether the status is one of the two states that
// carry a technician/date booking (and therefore allow rescheduling).
func SchedulingStatus(s entities.OrderStatus) bool {
	return s == entities.StatusScheduled || s == entities.StatusScheduledCollection
}

var locations = map[entities.OrderStatus]entities.OrderLocation{
	entities.StatusPending:             entities.LocationClient,
	entities.StatusScheduled:           entities.LocationClient,
	entities.StatusScheduledCollection: entities.LocationClient,
	entities.StatusInProgress:          entities.LocationClient,
	entities.StatusOnTheWay:            entities.LocationClient,
	entities.StatusNeedsWorkshop:       entities.LocationClient,

	entities.StatusCollected:             entities.LocationWorkshop,
	entities.StatusCollectedForDiagnosis: entities.LocationWorkshop,
	entities.StatusAtWorkshop:            entities.LocationWorkshop,
	entities.StatusReceivedAtWorkshop:    entities.LocationWorkshop,
	entities.StatusDiagnosisCompleted:    entities.LocationWorkshop,
	entities.StatusQuoteSent:             entities.LocationWorkshop,
	entities.StatusAwaitingQuoteApproval: entities.LocationWorkshop,
	entities.StatusQuoteApproved:         entities.LocationWorkshop,
	entities.StatusQuoteRejected:         entities.LocationWorkshop,
	entities.StatusReadyForReturn:        entities.LocationWorkshop,
	entities.StatusReadyForDelivery:      entities.LocationWorkshop,
	entities.StatusCollectedForDelivery:  entities.LocationWorkshop,

	entities.StatusOnTheWayToDeliver: entities.LocationDelivered,
	entities.StatusPaymentPending:    entities.LocationDelivered,
}

// LocationFor recomputes the equipment location implied by a status. Completed
// on-site work stays at the client; completed pickup work ends delivered.
// Cancelled orders keep whatever location they had.
func LocationFor(at entities.AttendanceType, status entities.OrderStatus, current entities.OrderLocation) entities.OrderLocation {
	switch status {
	case entities.StatusCompleted:
		if at.NeedsPickup() {
			return entities.LocationDelivered
		}
		return entities.LocationClient
	case entities.StatusCancelled:
		return current
	}
	if loc, ok := locations[status]; ok {
		return loc
	}
	return current
}
