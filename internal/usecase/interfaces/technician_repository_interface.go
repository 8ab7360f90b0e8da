package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// ITechnicianRepository is the technician directory. Scheduling only needs
// GetByID to verify the active flag; Create/List are the thin admin surface
// used by intake.

type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
}
