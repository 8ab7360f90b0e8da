package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Lookups that miss return a zero-value order and a nil error; the use case
// translates that into its not-found sentinel.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
}
