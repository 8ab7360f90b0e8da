package workflow

import (
	"testing"

	"assistec_os/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_PickupRepairHappyPath(t *testing.T) {
	path := []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusScheduledCollection,
		entities.StatusOnTheWay,
		entities.StatusCollected,
		entities.StatusAtWorkshop,
		entities.StatusReadyForDelivery,
		entities.StatusCollectedForDelivery,
		entities.StatusOnTheWayToDeliver,
		entities.StatusPaymentPending,
		entities.StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(entities.AttendancePickupRepair, path[i], path[i+1]),
			"%s -> %s", path[i], path[i+1])
	}
}

func TestCanTransition_PickupDiagnosisRejectedQuote(t *testing.T) {
	path := []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusScheduledCollection,
		entities.StatusCollectedForDiagnosis,
		entities.StatusReceivedAtWorkshop,
		entities.StatusDiagnosisCompleted,
		entities.StatusQuoteSent,
		entities.StatusAwaitingQuoteApproval,
		entities.StatusQuoteRejected,
		entities.StatusReadyForReturn,
		entities.StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(entities.AttendancePickupDiagnosis, path[i], path[i+1]),
			"%s -> %s", path[i], path[i+1])
	}

	// No shortcut straight from quote_sent to completed.
	assert.False(t, CanTransition(entities.AttendancePickupDiagnosis, entities.StatusQuoteSent, entities.StatusCompleted))
}

func TestCanTransition_OnSiteWorkshopDetour(t *testing.T) {
	at := entities.AttendanceOnSite

	assert.True(t, CanTransition(at, entities.StatusPending, entities.StatusScheduled))
	assert.True(t, CanTransition(at, entities.StatusScheduled, entities.StatusInProgress))
	assert.True(t, CanTransition(at, entities.StatusInProgress, entities.StatusCompleted))
	assert.True(t, CanTransition(at, entities.StatusInProgress, entities.StatusNeedsWorkshop))
	assert.True(t, CanTransition(at, entities.StatusNeedsWorkshop, entities.StatusScheduledCollection))
	assert.True(t, CanTransition(at, entities.StatusScheduledCollection, entities.StatusCollected))
	assert.True(t, CanTransition(at, entities.StatusCollected, entities.StatusAtWorkshop))
	assert.True(t, CanTransition(at, entities.StatusAtWorkshop, entities.StatusDiagnosisCompleted))

	// Pickup-only edges never leak into the on-site graph.
	assert.False(t, CanTransition(at, entities.StatusPending, entities.StatusScheduledCollection))
	assert.False(t, CanTransition(at, entities.StatusScheduledCollection, entities.StatusOnTheWay))
}

func TestCanTransition_WrongGraph(t *testing.T) {
	// pickup_repair never runs the quote path.
	assert.False(t, CanTransition(entities.AttendancePickupRepair, entities.StatusAtWorkshop, entities.StatusDiagnosisCompleted))
	// pickup flows never go through in_progress.
	assert.False(t, CanTransition(entities.AttendancePickupDiagnosis, entities.StatusScheduled, entities.StatusInProgress))
}

func TestSuccessors(t *testing.T) {
	next := Successors(entities.AttendancePickupDiagnosis, entities.StatusAwaitingQuoteApproval)
	assert.ElementsMatch(t, []entities.OrderStatus{entities.StatusQuoteApproved, entities.StatusQuoteRejected}, next)

	assert.Empty(t, Successors(entities.AttendanceOnSite, entities.StatusCompleted))
	assert.Empty(t, Successors(entities.AttendanceOnSite, entities.StatusCancelled))

	// Cancellation is not a graph edge; it is handled before the lookup.
	assert.ElementsMatch(t, []entities.OrderStatus{entities.StatusCompleted},
		Successors(entities.AttendancePickupDiagnosis, entities.StatusReadyForReturn))
	assert.ElementsMatch(t, []entities.OrderStatus{entities.StatusCompleted},
		Successors(entities.AttendanceOnSite, entities.StatusReadyForReturn))
}

func TestLocationFor(t *testing.T) {
	assert.Equal(t, entities.LocationClient,
		LocationFor(entities.AttendanceOnSite, entities.StatusPending, entities.LocationClient))
	assert.Equal(t, entities.LocationWorkshop,
		LocationFor(entities.AttendancePickupRepair, entities.StatusCollected, entities.LocationClient))
	assert.Equal(t, entities.LocationWorkshop,
		LocationFor(entities.AttendancePickupDiagnosis, entities.StatusCollectedForDiagnosis, entities.LocationClient))
	assert.Equal(t, entities.LocationDelivered,
		LocationFor(entities.AttendancePickupRepair, entities.StatusOnTheWayToDeliver, entities.LocationWorkshop))

	// Completed: pickup flows end delivered, on-site stays with the client.
	assert.Equal(t, entities.LocationDelivered,
		LocationFor(entities.AttendancePickupRepair, entities.StatusCompleted, entities.LocationDelivered))
	assert.Equal(t, entities.LocationClient,
		LocationFor(entities.AttendanceOnSite, entities.StatusCompleted, entities.LocationClient))

	// Cancelled keeps whatever location the order had.
	assert.Equal(t, entities.LocationWorkshop,
		LocationFor(entities.AttendancePickupRepair, entities.StatusCancelled, entities.LocationWorkshop))
}

func TestSchedulingStatus(t *testing.T) {
	assert.True(t, SchedulingStatus(entities.StatusScheduled))
	assert.True(t, SchedulingStatus(entities.StatusScheduledCollection))
	assert.False(t, SchedulingStatus(entities.StatusPending))
	assert.False(t, SchedulingStatus(entities.StatusCompleted))
}
