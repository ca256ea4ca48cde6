package main

import (
	_ "escritorio_juridico/docs"
	"escritorio_juridico/internal/adapter/http/routes"
	"escritorio_juridico/internal/config"
	"escritorio_juridico/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Escritório Jurídico API
// @version         1.0
// @description     Case status pipeline, case history and financial transactions backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	log.WithFields(log.Fields{
		"port":          cfg.Port,
		"cases_table":   cfg.CasesTable,
		"payments_mock": cfg.PaymentGatewayMock,
	}).Info("application start")

	routes.Run(cfg)
}
