package routes

import (
	"log"
	"strconv"

	_ "storefront_checkout/docs" // This will be auto-generated
	"storefront_checkout/internal/adapter/http/handlers"
	repository2 "storefront_checkout/internal/adapter/persistence/repository"
	"storefront_checkout/internal/infrastructure/database"
	"storefront_checkout/internal/infrastructure/payments"
	"storefront_checkout/internal/infrastructure/settings"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/internal/usecase/interfaces"

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
	cfg := settings.NewFromEnv()
	ddb := database.ConnectDynamoDB()

	cartRepo := repository2.NewCartSnapshotDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	var gateway interfaces.IGatewayClient
	ppClient, err := payments.NewPayPalClient(cfg.GatewayCredentials())
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		gateway = ppClient
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(
		cartRepo,
		paymentRepo,
		gateway,
		cfg,
		usecase.NewOrderRequestUseCase(),
		usecase.NewCaptureUseCase(),
	)
	sdkConfigUseCase := usecase.NewSDKConfigUseCase(cfg)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, sdkConfigUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
