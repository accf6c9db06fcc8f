package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "estimator_service/docs" // This will be auto-generated
	"estimator_service/internal/adapter/http/handlers"
	repository2 "estimator_service/internal/adapter/persistence/repository"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/infrastructure/database"
	"estimator_service/internal/infrastructure/payments"
	"estimator_service/internal/usecase"
	"estimator_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
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

	catalogRepo := newCatalogRepository(ddb)
	bidRepo := repository2.NewBidDynamoRepository(ddb)
	paymentRepo := repository2.NewBidPaymentDynamoRepository(ddb)

	settings := settingsFromEnv()
	loc := locationFromEnv()

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	estimateUseCase := usecase.NewEstimateUseCase(catalogRepo, settings, loc)
	bidUseCase := usecase.NewBidUseCase(bidRepo, estimateUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewBidPaymentUseCase(paymentRepo, bidRepo, paymentGateway)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)
	bidPaymentHandler := handlers.NewBidPaymentHandler(paymentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, catalogHandler, estimateHandler, bidHandler, bidPaymentHandler)
}

// newCatalogRepository picks the catalog source: a CMS-export JSON
// file when CATALOG_FILE is set, DynamoDB otherwise.
func newCatalogRepository(ddb *dynamodb.Client) interfaces.ICatalogRepository {
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		repo, err := repository2.NewCatalogFileRepository(path)
		if err != nil {
			log.Fatalf("failed to load catalog file %s: %v", path, err)
		}
		log.Printf("[catalog] loaded from file %s", path)
		return repo
	}
	return repository2.NewCatalogDynamoRepository(ddb)
}

// settingsFromEnv reads the scheduling configuration, falling back to
// the stock 5-day/8-hour/20% setup on missing or unparsable values.
func settingsFromEnv() estimate.Settings {
	s := estimate.DefaultSettings()
	if v, err := strconv.Atoi(os.Getenv("WORKING_DAYS_PER_WEEK")); err == nil && v >= 1 && v <= 7 {
		s.WorkingDaysPerWeek = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("HOURS_PER_DAY"), 64); err == nil && v > 0 {
		s.HoursPerDay = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("BUFFER_PERCENTAGE"), 64); err == nil && v >= 0 {
		s.BufferPercentage = v
	}
	return s
}

// locationFromEnv pins the timezone "today" is read in so schedule
// projections do not depend on the host clock's zone.
func locationFromEnv() *time.Location {
	name := os.Getenv("ESTIMATOR_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid ESTIMATOR_TIMEZONE %q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
