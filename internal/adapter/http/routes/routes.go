package routes

import (
	_ "escritorio_juridico/docs"
	"escritorio_juridico/internal/adapter/http/handlers"
	"escritorio_juridico/internal/adapter/persistence/repository"
	"escritorio_juridico/internal/config"
	"escritorio_juridico/internal/infrastructure/database"
	"escritorio_juridico/internal/infrastructure/metrics"
	"escritorio_juridico/internal/infrastructure/payments"
	"escritorio_juridico/internal/usecase"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "escritorio-juridico"

// Run will start the server
func Run(cfg *config.Config) {
	gin.SetMode(cfg.GinMode)

	ddb := database.ConnectDynamoDB(cfg)
	router := NewRouter(cfg, ddb)

	log.WithField("port", cfg.Port).Info("starting http server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to startup the application")
	}
}

// NewRouter wires repositories, use cases and handlers on top of ddb.
func NewRouter(cfg *config.Config, ddb repository.DynamoDBAPI) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	var recorder interfaces.ITransitionRecorder
	if cfg.MetricsEnabled {
		m := metrics.New(serviceName)
		router.Use(m.Middleware(serviceName))
		router.GET("/metrics", gin.WrapH(m.Handler()))
		recorder = m
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	caseRepo := repository.NewCaseDynamoRepository(ddb, cfg.CasesTable)
	movementRepo := repository.NewCaseMovementDynamoRepository(ddb, cfg.MovementsTable)
	transactionRepo := repository.NewFinancialTransactionDynamoRepository(ddb, cfg.TransactionsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		paymentGateway = payments.NewBreakingGateway(mpGateway, payments.BreakerConfig{})
	}

	caseUseCase := usecase.NewCaseUseCase(caseRepo, movementRepo, transactionRepo, recorder)
	transactionUseCase := usecase.NewFinancialTransactionUseCase(transactionRepo, caseRepo, paymentGateway)

	caseHandler := handlers.NewCaseHandler(caseUseCase)
	transactionHandler := handlers.NewFinancialTransactionHandler(transactionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, caseHandler, transactionHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
