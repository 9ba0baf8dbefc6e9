package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agenda_etech/internal/domain/entities"
	mock_interfaces "agenda_etech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validReservation() entities.Reservation {
	return entities.Reservation{
		Motivo:          entities.ReservaMotivoInstalacao,
		Data:            "2024-05-10",
		Hora:            "08:00",
		Viatura:         "VT01",
		ClienteNome:     "Maria Souza",
		ClienteContato:  "11 99999-0000",
		ClienteEndereco: "Rua das Flores, 12",
	}
}

func TestReservationUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewReservationUseCase(nil)
		r := validReservation()
		r.ClienteNome = "   "
		if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrMissingReservationFields) {
			t.Fatalf("expected ErrMissingReservationFields, got %v", err)
		}
	})

	t.Run("invalid motivo", func(t *testing.T) {
		uc := NewReservationUseCase(nil)
		r := validReservation()
		r.Motivo = "Festa"
		if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrInvalidReservaMotivo) {
			t.Fatalf("expected ErrInvalidReservaMotivo, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewReservationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), validReservation()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success assigns id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewReservationUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Reservation{})).DoAndReturn(
			func(_ context.Context, r entities.Reservation) (entities.Reservation, error) {
				if !strings.HasPrefix(r.ID, "RES-") {
					t.Fatalf("expected RES- id, got %q", r.ID)
				}
				if r.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return r, nil
			},
		)

		created, err := uc.Create(context.Background(), validReservation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ClienteNome != "Maria Souza" {
			t.Fatalf("unexpected reservation: %+v", created)
		}
	})
}

func TestReservationUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewReservationUseCase(nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidReservationID) {
			t.Fatalf("expected ErrInvalidReservationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewReservationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "RES-1").Return(entities.Reservation{}, nil)

		if err := uc.Delete(context.Background(), "RES-1"); !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewReservationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "RES-1").Return(entities.Reservation{ID: "RES-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "RES-1").Return(nil)

		if err := uc.Delete(context.Background(), "RES-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
