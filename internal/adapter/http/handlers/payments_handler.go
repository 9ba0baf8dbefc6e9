package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	response "agenda_etech/internal/adapter/http/dto/response"
	"agenda_etech/internal/usecase"
	"agenda_etech/internal/usecase/interfaces"
	"agenda_etech/pkg"

	"github.com/gin-gonic/gin"
)

const msgPeriodoObrigatorio = "Parâmetros 'inicio' e 'fim' são obrigatórios."

// PaymentsHandler serves the payments report and the raw pass-through route.
//
// The pass-through (ProxyPayments) talks to the worker gateway directly and
// relays status and body untouched, keeping the error contract the dashboard
// already consumes. The report route goes through the use case and returns
// the aggregated payload.

type PaymentsHandler struct {
	usecase usecase.IPaymentsUseCase
	gateway interfaces.IPaymentsWorkerGateway
}

func NewPaymentsHandler(uc usecase.IPaymentsUseCase, gateway interfaces.IPaymentsWorkerGateway) *PaymentsHandler {
	return &PaymentsHandler{usecase: uc, gateway: gateway}
}

// ProxyPayments relays GET /api/pagamentos?inicio=&fim= to the worker.
func (h *PaymentsHandler) ProxyPayments(c *gin.Context) {
	inicio := c.Query("inicio")
	fim := c.Query("fim")
	if inicio == "" || fim == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgPeriodoObrigatorio})
		return
	}

	resp, err := h.gateway.FetchPayments(c.Request.Context(), inicio, fim)
	if err != nil {
		log.Printf("[pagamentos][handler] proxy connect failed inicio=%s fim=%s err=%v", inicio, fim, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao conectar com o serviço de pagamentos.",
			"details": err.Error(),
		})
		return
	}
	if !resp.IsSuccess() {
		log.Printf("[pagamentos][handler] proxy upstream status=%d inicio=%s fim=%s", resp.StatusCode, inicio, fim)
		c.JSON(resp.StatusCode, gin.H{
			"error":   fmt.Sprintf("Erro ao buscar dados do Worker: %d", resp.StatusCode),
			"details": string(resp.Body),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", resp.Body)
}

// GetReport returns the aggregated payments report for a period.
func (h *PaymentsHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.Report(c.Request.Context(), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		appErr := mapPaymentsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentsReport(report))
}

func mapPaymentsError(err error) *pkg.AppError {
	var upstream *usecase.WorkerUpstreamError
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentsPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", msgPeriodoObrigatorio, http.StatusBadRequest)
	case errors.As(err, &upstream):
		return pkg.NewDomainError("WORKER_UPSTREAM_ERROR", fmt.Sprintf("Erro ao buscar dados do Worker: %d", upstream.StatusCode), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
