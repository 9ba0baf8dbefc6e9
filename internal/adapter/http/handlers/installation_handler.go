package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agenda_etech/internal/adapter/http/dto/request"
	response "agenda_etech/internal/adapter/http/dto/response"
	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase"
	"agenda_etech/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInstallationPayload = pkg.NewDomainErrorSimple("INVALID_INSTALLATION_INPUT", "Invalid installation payload", http.StatusBadRequest)

// InstallationHandler handles the installation intake endpoints.

type InstallationHandler struct {
	usecase usecase.IInstallationUseCase
}

func NewInstallationHandler(uc usecase.IInstallationUseCase) *InstallationHandler {
	return &InstallationHandler{usecase: uc}
}

// CreateInstallation validates and persists a submitted intake form.
func (h *InstallationHandler) CreateInstallation(c *gin.Context) {
	var payload request.InstallationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallationPayload.HTTPStatus, errInvalidInstallationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), draftFromRequest(payload))
	if err != nil {
		log.Printf("[instalacao][handler] create failed plano=%s err=%v", payload.PlanoCodigo, err)
		appErr := mapInstallationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[instalacao][handler] create success id=%s plano=%s", created.ID, created.PlanoCodigo)

	c.JSON(http.StatusCreated, response.FromInstallation(created))
}

// ListInstallations returns stored records, optionally filtered by ?q=.
func (h *InstallationHandler) ListInstallations(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapInstallationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallations(list))
}

// GetInstallation returns one record by id.
func (h *InstallationHandler) GetInstallation(c *gin.Context) {
	inst, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInstallationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallation(inst))
}

// DeleteInstallation removes one record by id.
func (h *InstallationHandler) DeleteInstallation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInstallationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func draftFromRequest(payload request.InstallationRequest) usecase.InstallationDraft {
	return usecase.InstallationDraft{
		NomeCompleto: payload.NomeCompleto,
		CPF:          payload.CPF,
		Nascimento:   payload.Nascimento,
		Contato1:     payload.Contato1,
		Contato2:     payload.Contato2,
		Email:        payload.Email,
		EnderecoFull: payload.EnderecoFull,
		Referencia:   payload.Referencia,

		VencimentoDia: payload.VencimentoDia,
		EntregaFatura: entities.BillingDelivery(payload.EntregaFatura),
		TaxaPagamento: entities.InstallFeePayment(payload.TaxaPagamento),

		WifiNome:  payload.WifiNome,
		WifiSenha: payload.WifiSenha,

		PlanoCodigo:  payload.PlanoCodigo,
		PlanoOpcaoID: payload.PlanoOpcaoID,
		Apps:         payload.Apps,

		CriadoPor:     payload.CriadoPor,
		NotasInternas: payload.NotasInternas,
		ReservaID:     payload.ReservaID,
	}
}

func mapInstallationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallationID),
		errors.Is(err, usecase.ErrMissingInstallationFields),
		errors.Is(err, usecase.ErrWifiSenhaTooShort),
		errors.Is(err, usecase.ErrInvalidVencimentoDia),
		errors.Is(err, usecase.ErrInvalidEntregaFatura),
		errors.Is(err, usecase.ErrInvalidTaxaPagamento):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppNotInOption):
		return pkg.NewDomainErrorSimple("APP_NOT_IN_OPTION", "App does not belong to the selected plan option", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppChoiceLimitReached):
		return pkg.NewDomainErrorSimple("APP_CHOICE_LIMIT_REACHED", "App choice limit reached for this category", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallationNotFound):
		return pkg.NewDomainErrorSimple("INSTALLATION_NOT_FOUND", "Installation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
