package controllers

import (
	"QuickBite/models"
	"QuickBite/services"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
	Logger      *slog.Logger
}

func NewMenuController(menuService *services.MenuService, logger *slog.Logger) *MenuController {
	return &MenuController{MenuService: menuService, Logger: logger}
}

// GetRecommendations returns up to 5 pre-computed recommendation records
// verbatim from the store.
func (c *MenuController) GetRecommendations(ctx *gin.Context) {
	records, err := c.MenuService.GetStoredRecommendations(ctx)
	if err != nil {
		c.Logger.Error("Failed to fetch recommendations", slog.Any("error", err))
		ctx.Error(err)
		return
	}
	if records == nil {
		records = []map[string]interface{}{}
	}
	ctx.JSON(http.StatusOK, records)
}

// GetPopularItems returns up to 5 items rated 4.0 or better, best first.
func (c *MenuController) GetPopularItems(ctx *gin.Context) {
	items, err := c.MenuService.GetPopularMenus(ctx)
	if err != nil {
		c.Logger.Error("Failed to fetch popular items", slog.Any("error", err))
		ctx.Error(err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	ctx.JSON(http.StatusOK, items)
}
