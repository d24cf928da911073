package routes

import (
	"log"
	"net/http"
	"os"

	_ "tagshop_variants/docs" // This will be auto-generated
	"tagshop_variants/internal/adapter/http/handlers"
	repository2 "tagshop_variants/internal/adapter/persistence/repository"
	"tagshop_variants/internal/infrastructure/database"
	"tagshop_variants/internal/infrastructure/shopify"
	"tagshop_variants/internal/usecase"
	"tagshop_variants/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort          = "3000"
	defaultAllowedOrigin = "https://www.tagshop.co.uk"
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	var gateway interfaces.IVariantGateway
	shopGateway, err := shopify.NewGateway(shopify.ConfigFromEnv())
	if err != nil {
		log.Printf("Shopify gateway not configured: %v", err)
	} else {
		gateway = shopGateway
	}

	variantUseCase := usecase.NewVariantUseCase(gateway, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)

	variantHandler := handlers.NewVariantHandler(variantUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Storefront-compatible routes live at the root, not under a version
	// group: the client paths are part of the historical contract.
	addVariantRoutes(router, variantHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// corsMiddleware restricts the API to the single allow-listed storefront
// origin. Preflight requests short-circuit with 200, which the storefront's
// older fetch wrapper expects.
func corsMiddleware() gin.HandlerFunc {
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = defaultAllowedOrigin
	}
	return cors.New(cors.Config{
		AllowOrigins:              []string{origin},
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		AllowCredentials:          true,
		OptionsResponseStatusCode: http.StatusOK,
	})
}
