package route

import (
	"QuickBite/controllers"
	"QuickBite/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(
	router *gin.Engine,
	chatController *controllers.ChatController,
	menuController *controllers.MenuController,
	recommendationController *controllers.RecommendationController,
	hotelController *controllers.HotelController,
	productController *controllers.ProductController,
) {
	apiRoutes := router.Group("/api")
	{
		handlers.RegisterChatRoutes(apiRoutes, chatController)
		handlers.RegisterMenuRoutes(apiRoutes, menuController)
		handlers.RegisterRecommendationRoutes(apiRoutes, recommendationController)
		handlers.RegisterHotelRoutes(apiRoutes, hotelController)
		handlers.RegisterProductRoutes(apiRoutes, productController)
	}
}
