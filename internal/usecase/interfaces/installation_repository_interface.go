package interfaces

import (
	"context"

	"agenda_etech/internal/domain/entities"
)

// IInstallationRepository abstracts DynamoDB persistence for installation
// intake records (fichas de instalação).
//
// The record is written once at intake and removed explicitly; the service
// never updates it in place.

type IInstallationRepository interface {
	Create(ctx context.Context, i entities.Installation) (entities.Installation, error)
	GetByID(ctx context.Context, id string) (entities.Installation, error)
	List(ctx context.Context) ([]entities.Installation, error)
	Delete(ctx context.Context, id string) error
}
