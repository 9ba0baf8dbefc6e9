package routes

import (
	"log"
	"strconv"

	_ "agenda_etech/docs" // This will be auto-generated
	"agenda_etech/internal/adapter/http/handlers"
	repository "agenda_etech/internal/adapter/persistence/repository"
	"agenda_etech/internal/infrastructure/database"
	"agenda_etech/internal/infrastructure/sgp"
	"agenda_etech/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	reservationRepo := repository.NewReservationDynamoRepository(ddb)
	installationRepo := repository.NewInstallationDynamoRepository(ddb)
	workerClient := sgp.NewWorkerClientFromEnv()

	catalogUseCase := usecase.NewCatalogUseCase()
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo)
	installationUseCase := usecase.NewInstallationUseCase(installationRepo, catalogUseCase)
	paymentsUseCase := usecase.NewPaymentsUseCase(workerClient)
	agendaUseCase := usecase.NewAgendaUseCase(workerClient, reservationRepo)

	planHandler := handlers.NewPlanHandler(catalogUseCase)
	reservationHandler := handlers.NewReservationHandler(reservationUseCase)
	installationHandler := handlers.NewInstallationHandler(installationUseCase)
	paymentsHandler := handlers.NewPaymentsHandler(paymentsUseCase, workerClient)
	agendaHandler := handlers.NewAgendaHandler(agendaUseCase)

	// Rota de compatibilidade com o dashboard: repassa o worker sem alterar o payload.
	router.GET("/api/pagamentos", paymentsHandler.ProxyPayments)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAgendaRoutes(v1, agendaHandler, planHandler, reservationHandler, installationHandler, paymentsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
