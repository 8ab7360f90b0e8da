package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// IOrderEventPublisher fans a committed status change out to downstream
// systems (messaging, analytics, conversion tracking). Delivery is their
// problem; the core only emits.

type IOrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, ev entities.StatusChangedEvent) error
}
