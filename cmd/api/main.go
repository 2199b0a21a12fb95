package main

import (
	_ "sit_connector/docs"
	"sit_connector/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SIT e-Payment Connector API
// @version         1.0
// @description     Translation layer between the payment-order domain model and the SIT electronic-payment API (orders, concept pricing, payment confirmation).
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
