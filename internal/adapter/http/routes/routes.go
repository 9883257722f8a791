package routes

import (
	"log"
	"os"
	"strings"

	_ "autoshop_billing/docs" // This will be auto-generated
	"autoshop_billing/internal/adapter/http/handlers"
	"autoshop_billing/internal/adapter/http/middleware"
	repository2 "autoshop_billing/internal/adapter/persistence/repository"
	"autoshop_billing/internal/infrastructure/database"
	"autoshop_billing/internal/infrastructure/payments"
	"autoshop_billing/internal/usecase"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceCostRepo := repository2.NewServiceCostDynamoRepository(ddb)
	loyaltyRepo := repository2.NewLoyaltyDiscountDynamoRepository(ddb)
	paymentRepo := repository2.NewCustomerPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	serviceCostUseCase := usecase.NewServiceCostUseCase(serviceCostRepo)
	loyaltyUseCase := usecase.NewLoyaltyDiscountUseCase(loyaltyRepo)
	paymentUseCase := usecase.NewCustomerPaymentUseCase(paymentRepo, serviceCostRepo, loyaltyRepo, paymentGateway)

	serviceCostHandler := handlers.NewServiceCostHandler(serviceCostUseCase)
	loyaltyHandler := handlers.NewLoyaltyDiscountHandler(loyaltyUseCase)
	paymentHandler := handlers.NewCustomerPaymentHandler(paymentUseCase)

	addPingRoutes(router.Group(""))

	api := router.Group("/api")
	api.Use(middleware.Identity())
	addFinanceRoutes(api, serviceCostHandler, loyaltyHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
