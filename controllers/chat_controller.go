package controllers

import (
	"QuickBite/models"
	"QuickBite/services"
	"QuickBite/utils"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	MenuService           *services.MenuService
	RecommendationService *services.RecommendationService
	Logger                *slog.Logger
}

func NewChatController(menuService *services.MenuService, recommendationService *services.RecommendationService, logger *slog.Logger) *ChatController {
	return &ChatController{
		MenuService:           menuService,
		RecommendationService: recommendationService,
		Logger:                logger,
	}
}

// ChatRequest represents the request payload
type ChatRequest struct {
	Message  string `json:"message"`
	MealType string `json:"mealType"`
}

// Chat resolves recommendations for a free-text message and/or meal type.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	message := strings.TrimSpace(req.Message)
	mealType := strings.TrimSpace(req.MealType)
	if message == "" && mealType == "" {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Either message or mealType is required")
		return
	}

	menu, err := c.MenuService.GetAllMenus(ctx)
	if err != nil {
		c.Logger.Error("Failed to fetch menus", slog.Any("error", err))
		utils.ErrorResponseWithDetails(ctx, http.StatusInternalServerError, "Failed to fetch menus", err.Error())
		return
	}

	resolution := c.RecommendationService.Recommend(ctx, message, mealType, menu)
	if resolution.Degraded {
		c.Logger.Warn("Recommendation resolution degraded to empty",
			slog.String("message", message),
			slog.String("mealType", mealType),
		)
	}

	items := resolution.Items
	if items == nil {
		items = []models.MenuItem{}
	}
	ctx.JSON(http.StatusOK, gin.H{"recommendations": items})
}
