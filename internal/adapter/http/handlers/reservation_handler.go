package handlers

import (
	"errors"
	"net/http"

	request "agenda_etech/internal/adapter/http/dto/request"
	response "agenda_etech/internal/adapter/http/dto/response"
	"agenda_etech/internal/usecase"
	"agenda_etech/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReservationPayload = pkg.NewDomainErrorSimple("INVALID_RESERVATION_INPUT", "Invalid reservation payload", http.StatusBadRequest)

// ReservationHandler handles the local reservation endpoints.

type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

// CreateReservation creates a reservation from the submitted form.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var payload request.ReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReservation(created))
}

// ListReservations returns every stored reservation.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(list))
}

// DeleteReservation removes one reservation by id.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapReservationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReservationID), errors.Is(err, usecase.ErrMissingReservationFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReservaMotivo):
		return pkg.NewDomainErrorSimple("INVALID_MOTIVO", "Invalid reservation motivo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
