package interfaces

import (
	"context"

	"agenda_etech/internal/domain/entities"
)

// WorkerResponse carries an upstream reply untouched (status code + raw JSON
// body) so the pass-through route can relay it verbatim.

type WorkerResponse struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the upstream answered with a 2xx status.
func (r WorkerResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IPaymentsWorkerGateway fetches processed payments from the SGP Cloudflare
// worker for an inclusive date range.
//
// A non-nil error means the network call itself failed; an upstream non-2xx
// reply is NOT an error here — callers inspect the WorkerResponse so they can
// pass the upstream status and body through to clients.

type IPaymentsWorkerGateway interface {
	FetchPayments(ctx context.Context, inicio, fim string) (WorkerResponse, error)
}

// IAgendaGateway fetches the multi-day, per-vehicle agenda from the SGP.

type IAgendaGateway interface {
	FetchAgenda(ctx context.Context) (entities.Agenda, error)
}
