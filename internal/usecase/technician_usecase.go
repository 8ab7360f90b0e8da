package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidTechnicianName = errors.New("invalid technician name")

// ITechnicianUseCase is the thin admin surface over the technician directory.

type ITechnicianUseCase interface {
	Create(ctx context.Context, name string, active bool) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
}

type TechnicianUseCase struct {
	repo interfaces.ITechnicianRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, name string, active bool) (entities.Technician, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Technician{}, ErrInvalidTechnicianName
	}

	t := entities.Technician{
		ID:        uuid.NewString(),
		Name:      name,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Technician{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return created, nil
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technician{}, ErrInvalidTechnicianID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if t.ID == "" {
		return entities.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

func (u *TechnicianUseCase) List(ctx context.Context) ([]entities.Technician, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return list, nil
}
