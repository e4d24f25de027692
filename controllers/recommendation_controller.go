package controllers

import (
	"QuickBite/models"
	"QuickBite/services"
	"QuickBite/utils"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	MenuService           *services.MenuService
	PlaceService          *services.PlaceService
	RecommendationService *services.RecommendationService
	Logger                *slog.Logger
}

func NewRecommendationController(
	menuService *services.MenuService,
	placeService *services.PlaceService,
	recommendationService *services.RecommendationService,
	logger *slog.Logger,
) *RecommendationController {
	return &RecommendationController{
		MenuService:           menuService,
		PlaceService:          placeService,
		RecommendationService: recommendationService,
		Logger:                logger,
	}
}

// GetPersonalizedRecommendations resolves recommendations for the query
// parameters and, when a location is given, attaches the distance to each
// item's hotel.
func (c *RecommendationController) GetPersonalizedRecommendations(ctx *gin.Context) {
	query := ctx.Query("query")
	mealType := ctx.Query("mealType")

	lat, latErr := strconv.ParseFloat(ctx.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(ctx.Query("lon"), 64)
	hasLocation := latErr == nil && lonErr == nil

	menu, err := c.MenuService.GetAllMenus(ctx)
	if err != nil {
		c.Logger.Error("Failed to fetch menus", slog.Any("error", err))
		ctx.Error(err)
		return
	}

	resolution := c.RecommendationService.Recommend(ctx, query, mealType, menu)
	if resolution.Degraded {
		c.Logger.Warn("Recommendation resolution degraded to empty",
			slog.String("query", query),
			slog.String("mealType", mealType),
		)
	}

	recommendations := make([]models.Recommendation, 0, len(resolution.Items))
	for _, item := range resolution.Items {
		rec := models.Recommendation{Item: item}
		if hasLocation && item.HotelID != "" {
			place, err := c.PlaceService.GetHotelByID(ctx, item.HotelID)
			if err == nil && place.Location != nil {
				distance := utils.DistanceKm(lat, lon, place.Location.Latitude, place.Location.Longitude)
				rec.Distance = &distance
			}
		}
		recommendations = append(recommendations, rec)
	}

	ctx.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
