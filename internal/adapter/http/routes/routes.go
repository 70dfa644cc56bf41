package routes

import (
	"log"
	"os"
	"strconv"

	_ "buildconnect/docs" // swagger docs, auto-generated
	"buildconnect/internal/adapter/http/handlers"
	"buildconnect/internal/adapter/http/middleware"
	repository2 "buildconnect/internal/adapter/persistence/repository"
	"buildconnect/internal/infrastructure/database"
	"buildconnect/internal/infrastructure/payments"
	"buildconnect/internal/presence"
	"buildconnect/internal/usecase"
	"buildconnect/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	requirementRepo := repository2.NewRequirementDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)
	professionalRepo := repository2.NewProfessionalDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	requirementUseCase := usecase.NewRequirementUseCase(requirementRepo, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, requirementRepo, companyRepo, professionalRepo, notificationRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, requirementRepo, paymentGateway)

	requirementHandler := handlers.NewRequirementHandler(requirementUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	presenceHandler := handlers.NewPresenceHandler(presence.NewTracker())

	v1 := router.Group("/v1")
	v1.Use(middleware.Auth())
	addMarketplaceRoutes(v1, requirementHandler, quoteHandler, notificationHandler, paymentHandler, presenceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
