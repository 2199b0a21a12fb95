package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "sit_connector/docs" // swag-generated swagger spec
	"sit_connector/internal/adapter/http/handlers"
	"sit_connector/internal/infrastructure/catalog"
	"sit_connector/internal/infrastructure/provider"
	"sit_connector/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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
	sitClient, err := provider.NewSITClientFromEnv()
	if err != nil {
		log.Fatalf("SIT provider client not configured: %v", err)
	}

	serviceCatalog := catalog.NewServiceCatalogCache(sitClient)

	orderUseCase := usecase.NewPaymentOrderUseCase(sitClient)
	pricingUseCase := usecase.NewPricingUseCase(serviceCatalog, sitClient)
	paymentUseCase := usecase.NewPaymentUseCase(sitClient)

	orderHandler := handlers.NewPaymentOrderHandler(orderUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConnectorRoutes(v1, orderHandler, pricingHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
}

// requestID tags every request with an X-Request-ID so connector calls can be
// correlated with provider-side logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
