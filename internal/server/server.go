package server

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"school-payments-api/config"
	"school-payments-api/internal/gateway"
	"school-payments-api/internal/handlers"
	"school-payments-api/internal/logger"
	"school-payments-api/internal/middleware"
	"school-payments-api/internal/repository"
	"school-payments-api/internal/service"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not configured")
	}

	gatewayCfg, err := config.LoadGatewayConfig()
	if err != nil {
		return fmt.Errorf("failed to load gateway config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	log := logger.NewLogger()

	r := gin.Default()
	r.Use(cors.Default())

	setupRoutes(r, db, cfg, gatewayCfg, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("school payments api listening")
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, gatewayCfg *config.GatewayConfig, log *logrus.Logger) {
	orderRepo := repository.NewOrderRepository(db)
	statusRepo := repository.NewOrderStatusRepository(db)
	webhookLogRepo := repository.NewWebhookLogRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	gatewayClient := gateway.NewClient(gatewayCfg.APIURL, gatewayCfg.PgKey, gatewayCfg.APIKey)

	paymentService := service.NewPaymentService(orderRepo, statusRepo, gatewayClient)
	reconcileService := service.NewReconcileService(orderRepo, statusRepo, webhookLogRepo, gatewayCfg.FallbackSchoolID)
	transactionService := service.NewTransactionService(transactionRepo, statusRepo)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	paymentHandler := handlers.NewPaymentHandler(paymentService, log)
	webhookHandler := handlers.NewWebhookHandler(reconcileService, log)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "School Payments API is running")
	})

	public := r.Group("")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Webhook trust is delegated to network-level controls; the
		// gateway does not send bearer tokens.
		public.POST("/webhook", webhookHandler.Receive)
	}

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/create-payment", paymentHandler.CreatePayment)

		transactions := protected.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.GET("/school/:schoolId", transactionHandler.ListBySchool)
			transactions.GET("/status/:custom_order_id", transactionHandler.Status)
		}
	}
}
