package main

import (
	_ "agenda_etech/docs"
	"agenda_etech/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Agenda E-Tech API
// @version         1.0
// @description     Operational dashboard API for a field-service team: agenda, local reservations, installation intake and payments, backed by DynamoDB and the SGP worker.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
