package routes

import (
	"agenda_etech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAgenda      = "/agenda"
	PathPlanos      = "/planos"
	PathReservas    = "/reservas"
	PathInstalacoes = "/instalacoes"
	PathPagamentos  = "/pagamentos"
)

func addAgendaRoutes(
	rg *gin.RouterGroup,
	agendaHandler *handlers.AgendaHandler,
	planHandler *handlers.PlanHandler,
	reservationHandler *handlers.ReservationHandler,
	installationHandler *handlers.InstallationHandler,
	paymentsHandler *handlers.PaymentsHandler,
) {
	rg.GET(PathAgenda, agendaHandler.GetAgenda)

	planos := rg.Group(PathPlanos)
	{
		planos.GET("", planHandler.ListPlans)
		planos.GET("/:codigo", planHandler.GetPlan)
		planos.POST("/:codigo/opcoes/:opcao/apps", planHandler.ToggleApp)
	}

	reservas := rg.Group(PathReservas)
	{
		reservas.POST("", reservationHandler.CreateReservation)
		reservas.GET("", reservationHandler.ListReservations)
		reservas.DELETE("/:id", reservationHandler.DeleteReservation)
	}

	instalacoes := rg.Group(PathInstalacoes)
	{
		instalacoes.POST("", installationHandler.CreateInstallation)
		instalacoes.GET("", installationHandler.ListInstallations)
		instalacoes.GET("/:id", installationHandler.GetInstallation)
		instalacoes.DELETE("/:id", installationHandler.DeleteInstallation)
	}

	pagamentos := rg.Group(PathPagamentos)
	{
		pagamentos.GET("/relatorio", paymentsHandler.GetReport)
	}
}
