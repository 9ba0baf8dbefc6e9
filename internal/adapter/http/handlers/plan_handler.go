package handlers

import (
	"errors"
	"net/http"

	request "agenda_etech/internal/adapter/http/dto/request"
	response "agenda_etech/internal/adapter/http/dto/response"
	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase"
	"agenda_etech/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTogglePayload = pkg.NewDomainErrorSimple("INVALID_TOGGLE_INPUT", "Invalid app toggle payload", http.StatusBadRequest)
	errPlanNotFound         = pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	errPlanOptionNotFound   = pkg.NewDomainErrorSimple("PLAN_OPTION_NOT_FOUND", "Plan option not found", http.StatusNotFound)
)

// PlanHandler serves the plan catalog and the app-selection toggle.

type PlanHandler struct {
	catalog usecase.ICatalogUseCase
}

func NewPlanHandler(catalog usecase.ICatalogUseCase) *PlanHandler {
	return &PlanHandler{catalog: catalog}
}

// ListPlans returns the full catalog in display order.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPlans(h.catalog.ListPlans()))
}

// GetPlan returns one plan by codigo. Unlike the intake flow, which falls
// back to the first catalog entry, a direct lookup of an unknown codigo is a
// 404.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, ok := h.findPlan(c.Param("codigo"))
	if !ok {
		c.JSON(errPlanNotFound.HTTPStatus, errPlanNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// ToggleApp flips one app in a selection for the plan option in the path and
// returns the resulting selection. A full category is a conflict.
func (h *PlanHandler) ToggleApp(c *gin.Context) {
	plan, ok := h.findPlan(c.Param("codigo"))
	if !ok {
		c.JSON(errPlanNotFound.HTTPStatus, errPlanNotFound.ToHTTPError())
		return
	}
	option, ok := findOption(plan, c.Param("opcao"))
	if !ok {
		c.JSON(errPlanOptionNotFound.HTTPStatus, errPlanOptionNotFound.ToHTTPError())
		return
	}

	var payload request.ToggleAppRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTogglePayload.HTTPStatus, errInvalidTogglePayload.ToHTTPError())
		return
	}

	selected, err := h.catalog.ToggleApp(option, payload.Selected, payload.App, entities.AppCategory(payload.Category))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if selected == nil {
		selected = []string{}
	}

	c.JSON(http.StatusOK, response.ToggleAppResponse{Selected: selected})
}

func (h *PlanHandler) findPlan(codigo string) (entities.Plan, bool) {
	for _, p := range h.catalog.ListPlans() {
		if p.Codigo == codigo {
			return p, true
		}
	}
	return entities.Plan{}, false
}

func findOption(plan entities.Plan, optionID string) (entities.PlanOption, bool) {
	for _, opt := range plan.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return entities.PlanOption{}, false
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAppNotInOption):
		return pkg.NewDomainErrorSimple("APP_NOT_IN_OPTION", "App does not belong to the selected plan option", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppChoiceLimitReached):
		return pkg.NewDomainErrorSimple("APP_CHOICE_LIMIT_REACHED", "App choice limit reached for this category", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
