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

type HotelController struct {
	PlaceService *services.PlaceService
	Logger       *slog.Logger
}

func NewHotelController(placeService *services.PlaceService, logger *slog.Logger) *HotelController {
	return &HotelController{PlaceService: placeService, Logger: logger}
}

// GetNearbyHotels returns the 5 hotels closest to the given point.
func (c *HotelController) GetNearbyHotels(ctx *gin.Context) {
	latitudeStr := ctx.Query("latitude")
	longitudeStr := ctx.Query("longitude")

	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid longitude")
		return
	}

	hotels, err := c.PlaceService.NearbyHotels(ctx, latitude, longitude)
	if err != nil {
		c.Logger.Error("Failed to fetch hotels", slog.Any("error", err))
		ctx.Error(err)
		return
	}
	if hotels == nil {
		hotels = []models.NearbyHotel{}
	}
	ctx.JSON(http.StatusOK, hotels)
}

// HotelRequest represents the ingestion payload. Coordinates arrive as
// strings from some clients, so they are parsed rather than bound.
type HotelRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	Latitude  string `json:"latitude" binding:"required"`
	Longitude string `json:"longitude" binding:"required"`
}

// CreateHotel stores a new hotel record unless one with the same name
// already exists nearby.
func (c *HotelController) CreateHotel(ctx *gin.Context) {
	var req HotelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	latitude, err := strconv.ParseFloat(req.Latitude, 64)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid latitude format")
		return
	}
	longitude, err := strconv.ParseFloat(req.Longitude, 64)
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid longitude format")
		return
	}

	exists, err := c.PlaceService.HotelExists(ctx, latitude, longitude, req.Name)
	if err != nil {
		c.Logger.Error("Failed to check hotel existence", slog.Any("error", err))
		ctx.Error(err)
		return
	}
	if exists {
		utils.ErrorResponse(ctx, http.StatusConflict, "Hotel already exists")
		return
	}

	place := &models.Place{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Type:     req.Type,
		Location: &models.GeoLocation{Latitude: latitude, Longitude: longitude},
	}
	id, err := c.PlaceService.SaveHotel(ctx, place)
	if err != nil {
		c.Logger.Error("Failed to save hotel", slog.Any("error", err))
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}
