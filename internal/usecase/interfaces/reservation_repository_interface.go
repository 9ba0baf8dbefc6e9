package interfaces

import (
	"context"

	"agenda_etech/internal/domain/entities"
)

// IReservationRepository abstracts DynamoDB persistence for local
// reservations. Reservations are create/delete only; there is no update.

type IReservationRepository interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	GetByID(ctx context.Context, id string) (entities.Reservation, error)
	List(ctx context.Context) ([]entities.Reservation, error)
	Delete(ctx context.Context, id string) error
}
