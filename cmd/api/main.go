package main

import (
	"os"

	"gestao_capacidade/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão de Capacidade API
// @version         1.0
// @description     Capacity analysis: estimated vs realized hours, availability and utilization per collaborator, client, product, task type and task.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
