package handlers

import (
	"QuickBite/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.RouterGroup, recommendationController *controllers.RecommendationController) {
	router.GET("/personalized-recommendations", recommendationController.GetPersonalizedRecommendations)
}
