package main

import (
	_ "autoshop_billing/docs"
	"autoshop_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Autoshop Billing API
// @version         1.0
// @description     Customer payment pipeline for vehicle service jobs (service costs, loyalty discounts, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey UserIdentity
// @in header
// @name X-User-Id
// @description Caller identity asserted by the API gateway.

func main() {
	routes.Run()
}
