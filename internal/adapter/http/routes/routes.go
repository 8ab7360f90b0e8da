package routes

import (
	"context"
	"log"

	_ "assistec_os/docs" // This will be auto-generated
	"assistec_os/internal/adapter/http/handlers"
	"assistec_os/internal/adapter/persistence/repository"
	"assistec_os/internal/config"
	"assistec_os/internal/infrastructure/database"
	"assistec_os/internal/infrastructure/logging"
	"assistec_os/internal/infrastructure/messaging"
	"assistec_os/internal/usecase"
	"assistec_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewSugaredLogger(cfg.LogEnv)
	defer logger.Sync() //nolint:errcheck

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb, err := database.NewClient(context.Background())
	if err != nil {
		logger.Fatalw("Failed to connect to DynamoDB", "error", err)
	}

	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)
	technicianRepo := repository.NewTechnicianDynamoRepository(ddb)

	var publisher interfaces.IOrderEventPublisher
	if cfg.NATSURL != "" {
		natsPublisher, err := messaging.NewNATSOrderEventPublisher(cfg.NATSURL)
		if err != nil {
			logger.Warnw("NATS not configured, status events will not be published", "error", err)
		} else {
			defer natsPublisher.Close()
			publisher = natsPublisher
		}
	}

	availabilityUseCase := usecase.NewAvailabilityUseCase(appointmentRepo, logger)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, technicianRepo, availabilityUseCase, publisher, logger)
	technicianUseCase := usecase.NewTechnicianUseCase(technicianRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	schedulingHandler := handlers.NewSchedulingHandler(technicianUseCase, availabilityUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addSchedulingRoutes(v1, schedulingHandler)

	if err := router.Run(cfg.RunAddress); err != nil {
		logger.Fatalw("Failed to startup the application", "error", err)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
