package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTechnicianUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		if _, err := uc.Create(context.Background(), "   ", true); !errors.Is(err, ErrInvalidTechnicianName) {
			t.Fatalf("expected ErrInvalidTechnicianName, got %v", err)
		}
	})

	t.Run("trims name and assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
			if tech.Name != "Carlos" {
				t.Fatalf("expected trimmed name Carlos, got %q", tech.Name)
			}
			if tech.ID == "" {
				t.Fatal("expected a generated id")
			}
			if tech.CreatedAt.IsZero() {
				t.Fatal("expected created_at to be set")
			}
			return tech, nil
		})

		created, err := uc.Create(context.Background(), "  Carlos  ", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.Active {
			t.Fatal("expected active technician")
		}
	})

	t.Run("store failure maps to upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Technician{}, errors.New("throttled"))

		if _, err := uc.Create(context.Background(), "Carlos", true); !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestTechnicianUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Technician{}, nil)

		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrTechnicianNotFound) {
			t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		want := entities.Technician{ID: "tech-1", Name: "Carlos", Active: true, CreatedAt: time.Now().UTC()}
		repo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(want, nil)

		got, err := uc.GetByID(context.Background(), "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID || got.Name != want.Name {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})
}

func TestTechnicianUseCase_List(t *testing.T) {
	t.Run("store failure maps to upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("scan failed"))

		if _, err := uc.List(context.Background()); !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Technician{{ID: "tech-1"}, {ID: "tech-2"}}, nil)

		list, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 technicians, got %d", len(list))
		}
	})
}
