package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"
)

var ErrInvalidPaymentsPeriod = errors.New("invalid payments period")

// WorkerUpstreamError is returned when the SGP worker answered with a
// non-2xx status; it keeps the upstream status and body so handlers can
// relay them to the client unchanged.

type WorkerUpstreamError struct {
	StatusCode int
	Details    string
}

func (e *WorkerUpstreamError) Error() string {
	return fmt.Sprintf("worker replied %d: %s", e.StatusCode, e.Details)
}

// PaymentsReport is the payments tab payload: the fetched records plus the
// derived aggregates for the requested period.

type PaymentsReport struct {
	Summary    entities.PaymentsSummary
	Pagamentos []entities.Payment
}

// IPaymentsUseCase builds the payments report for a date range.

type IPaymentsUseCase interface {
	Report(ctx context.Context, inicio, fim string) (PaymentsReport, error)
}

type PaymentsUseCase struct {
	gateway interfaces.IPaymentsWorkerGateway
}

var _ IPaymentsUseCase = (*PaymentsUseCase)(nil)

func NewPaymentsUseCase(gateway interfaces.IPaymentsWorkerGateway) *PaymentsUseCase {
	return &PaymentsUseCase{gateway: gateway}
}

func (u *PaymentsUseCase) Report(ctx context.Context, inicio, fim string) (PaymentsReport, error) {
	inicio = strings.TrimSpace(inicio)
	fim = strings.TrimSpace(fim)
	if inicio == "" || fim == "" {
		return PaymentsReport{}, ErrInvalidPaymentsPeriod
	}

	resp, err := u.gateway.FetchPayments(ctx, inicio, fim)
	if err != nil {
		log.Printf("[pagamentos][usecase] worker fetch failed inicio=%s fim=%s err=%v", inicio, fim, err)
		return PaymentsReport{}, err
	}
	if !resp.IsSuccess() {
		log.Printf("[pagamentos][usecase] worker replied status=%d inicio=%s fim=%s", resp.StatusCode, inicio, fim)
		return PaymentsReport{}, &WorkerUpstreamError{StatusCode: resp.StatusCode, Details: string(resp.Body)}
	}

	var pagamentos []entities.Payment
	if err := json.Unmarshal(resp.Body, &pagamentos); err != nil {
		log.Printf("[pagamentos][usecase] worker body unmarshal failed err=%v", err)
		return PaymentsReport{}, err
	}

	return PaymentsReport{Summary: Summarize(pagamentos), Pagamentos: pagamentos}, nil
}

// Summarize reduces an unordered payment list to the period aggregates.
//
// Determinism: sums run left-to-right over the input order, so the same list
// always yields bit-identical totals; per-day buckets are emitted sorted
// ascending by date string. An empty list yields all zeros and an empty day
// list.
//
// Carrier classification is a case-insensitive substring match on portador;
// a label containing both "SCM" and "SVA" counts toward both subtotals.
func Summarize(pagamentos []entities.Payment) entities.PaymentsSummary {
	s := entities.PaymentsSummary{
		TotalPagamentos: len(pagamentos),
		DailySummary:    []entities.DailyPayments{},
	}

	for _, p := range pagamentos {
		s.TotalRecebido += p.ValorPago
	}
	if s.TotalPagamentos > 0 {
		s.TicketMedio = roundCents(s.TotalRecebido / float64(s.TotalPagamentos))
	}

	for _, p := range pagamentos {
		portador := strings.ToUpper(p.Portador)
		carried := p.ValorSCM + p.ValorSCI + p.ValorSVA
		if strings.Contains(portador, "SCM") {
			s.TotalSCM += carried
		}
		if strings.Contains(portador, "SVA") {
			s.TotalSVA += carried
		}
	}

	porDia := map[string]*entities.DailyPayments{}
	for _, p := range pagamentos {
		d, ok := porDia[p.DataPagamento]
		if !ok {
			d = &entities.DailyPayments{Date: p.DataPagamento}
			porDia[p.DataPagamento] = d
		}
		d.Count++
		d.Total += p.ValorPago
	}

	dates := make([]string, 0, len(porDia))
	for date := range porDia {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		d := porDia[date]
		d.TicketMedio = roundCents(d.Total / float64(d.Count))
		s.DailySummary = append(s.DailySummary, *d)
	}

	return s
}

// roundCents rounds half away from zero to 2 decimals, so averages land on
// whole centavos.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
