package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrInvalidReservationID     = errors.New("invalid reservation id")
	ErrMissingReservationFields = errors.New("missing required reservation fields")
	ErrInvalidReservaMotivo     = errors.New("invalid reservation motivo")
)

// IReservationUseCase exposes the local reservation (reserva local) flow:
// create on submission, list, delete. Records are never updated.

type IReservationUseCase interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	List(ctx context.Context) ([]entities.Reservation, error)
	Delete(ctx context.Context, id string) error
}

type ReservationUseCase struct {
	repo interfaces.IReservationRepository
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(repo interfaces.IReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo}
}

func (u *ReservationUseCase) Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error) {
	r.ClienteNome = strings.TrimSpace(r.ClienteNome)
	r.ClienteContato = strings.TrimSpace(r.ClienteContato)
	r.ClienteEndereco = strings.TrimSpace(r.ClienteEndereco)
	r.Viatura = strings.TrimSpace(r.Viatura)

	if r.ClienteNome == "" || r.ClienteContato == "" || r.ClienteEndereco == "" || r.Viatura == "" || r.Data == "" || r.Hora == "" {
		return entities.Reservation{}, ErrMissingReservationFields
	}
	if !entities.ValidMotivo(r.Motivo) {
		return entities.Reservation{}, ErrInvalidReservaMotivo
	}

	r.ID = "RES-" + uuid.NewString()
	r.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[reserva][usecase] create failed viatura=%s err=%v", r.Viatura, err)
		return entities.Reservation{}, err
	}
	log.Printf("[reserva][usecase] create success id=%s motivo=%s data=%s viatura=%s", created.ID, created.Motivo, created.Data, created.Viatura)
	return created, nil
}

func (u *ReservationUseCase) List(ctx context.Context) ([]entities.Reservation, error) {
	return u.repo.List(ctx)
}

func (u *ReservationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidReservationID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrReservationNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[reserva][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[reserva][usecase] delete success id=%s", id)
	return nil
}
