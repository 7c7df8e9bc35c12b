package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/franciscosanchezn/pizza-orders-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-orders-api/internal/auth"
	"github.com/franciscosanchezn/pizza-orders-api/internal/config"
	"github.com/franciscosanchezn/pizza-orders-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-orders-api/internal/database"
	"github.com/franciscosanchezn/pizza-orders-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

var (
	db              *gorm.DB
	userService     services.UserService
	pizzaService    services.PizzaService
	orderService    services.OrderService
	oauthService    *auth.OAuthService
	authController  *controllers.AuthController
	pizzaController controllers.PizzaController
	orderController controllers.OrderController
	configuration   *config.Config
)

// @title Pizza Orders API
// @version 1.0
// @description A multi-tenant pizza order management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	userService = services.NewUserService(db)
	pizzaService = services.NewPizzaService(db)
	orderService = services.NewOrderService(db, configuration.MaxOrderQuantity)
	oauthService = auth.NewOAuthService(db, userService, configuration.JWTSecret)
	authController = controllers.NewAuthController(userService)
	pizzaController = controllers.NewPizzaController(pizzaService)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the connection, applies migrations and seeds the
// catalog on an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedCatalog(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Token endpoint (password and client_credentials grants)
	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		// Account registration is the only public API surface
		v1.POST("/auth/register", authController.Register)

		// Everything else requires a valid Bearer token
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.OAuth2Auth([]byte(configuration.JWTSecret), userService))
		{
			protectedApi.GET("/orders", orderController.ListOrders)
			protectedApi.POST("/orders", orderController.CreateOrder)
			protectedApi.GET("/orders/:id", orderController.GetOrder)
			protectedApi.PATCH("/orders/:id", orderController.UpdateOrder)
			protectedApi.DELETE("/orders/:id", orderController.DeleteOrder)

			// Catalog writes are open to any authenticated user
			protectedApi.GET("/pizzas", pizzaController.GetAllPizzas)
			protectedApi.POST("/pizzas", pizzaController.CreatePizza)
			protectedApi.GET("/pizzas/:id", pizzaController.GetPizzaByID)
			protectedApi.PATCH("/pizzas/:id", pizzaController.UpdatePizza)
			protectedApi.DELETE("/pizzas/:id", pizzaController.DeletePizza)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireStaff())
			{
				adminApi.GET("/orders", orderController.ListAllOrders)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-orders-api",
	})
}
