package handlers

import (
	"QuickBite/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	router.GET("/recommendations", menuController.GetRecommendations)
	router.GET("/popular-items", menuController.GetPopularItems)
}
