package main

import (
	_ "primefinish/docs"
	"primefinish/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Prime Finish Back Office API
// @version         1.0
// @description     Back office for a painting contractor: estimates, jobs, invoices, expenses and staff payouts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  info@primefinish.ca

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
