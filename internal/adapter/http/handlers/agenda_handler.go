package handlers

import (
	"net/http"

	"agenda_etech/internal/usecase"
	"agenda_etech/pkg"

	"github.com/gin-gonic/gin"
)

// AgendaHandler serves the merged operational agenda.

type AgendaHandler struct {
	usecase usecase.IAgendaUseCase
}

func NewAgendaHandler(uc usecase.IAgendaUseCase) *AgendaHandler {
	return &AgendaHandler{usecase: uc}
}

// GetAgenda returns the SGP agenda with local reservations merged in,
// optionally filtered by ?q=. The payload keeps the upstream wire shape so
// the dashboard renders both sources the same way.
func (h *AgendaHandler) GetAgenda(c *gin.Context) {
	agenda, err := h.usecase.Load(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := pkg.NewDomainError("AGENDA_UNAVAILABLE", "Could not load the agenda", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, agenda)
}
