package handlers

import (
	"QuickBite/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.RouterGroup, chatController *controllers.ChatController) {
	router.POST("/chat", chatController.Chat)
}
