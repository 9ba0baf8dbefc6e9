package response

import (
	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase"
)

// PaymentsReportResponse wraps the period aggregates and the raw records.
// Payment fields keep the worker's camelCase wire names so the dashboard can
// consume this payload and the pass-through route interchangeably.
type PaymentsReportResponse struct {
	Summary    entities.PaymentsSummary `json:"summary"`
	Pagamentos []entities.Payment       `json:"pagamentos"`
}

func FromPaymentsReport(r usecase.PaymentsReport) PaymentsReportResponse {
	pagamentos := r.Pagamentos
	if pagamentos == nil {
		pagamentos = []entities.Payment{}
	}
	return PaymentsReportResponse{Summary: r.Summary, Pagamentos: pagamentos}
}
