package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"QuickBite/config/database"
	"QuickBite/config/environment"
	applogger "QuickBite/config/logger"
	"QuickBite/controllers"
	"QuickBite/middleware"
	route "QuickBite/routes/api"
	"QuickBite/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	logger := applogger.New(environment.GetAppEnv())

	ctx := context.Background()
	firestoreClient, err := database.InitFirestore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	var aiClient services.AIClient
	switch environment.GetAIProvider() {
	case "openai":
		aiClient, err = services.NewOpenAIService(environment.GetOpenAIKey())
	default:
		aiClient, err = services.NewGeminiService(ctx, environment.GetGeminiKey())
	}
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}

	menuService := services.NewMenuService(firestoreClient)
	placeService := services.NewPlaceService(firestoreClient)
	recommendationService := services.NewRecommendationService(aiClient, logger)
	productService := services.NewProductService(logger)

	chatController := controllers.NewChatController(menuService, recommendationService, logger)
	menuController := controllers.NewMenuController(menuService, logger)
	recommendationController := controllers.NewRecommendationController(menuService, placeService, recommendationService, logger)
	hotelController := controllers.NewHotelController(placeService, logger)
	productController := controllers.NewProductController(productService, logger)

	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.RegisterRoutes(r, chatController, menuController, recommendationController, hotelController, productController)

	port := environment.GetPort()
	logger.Info("Server running", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
