package handlers

import (
	"QuickBite/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHotelRoutes(router *gin.RouterGroup, hotelController *controllers.HotelController) {
	router.GET("/nearby-hotels", hotelController.GetNearbyHotels)
	router.POST("/hotels", hotelController.CreateHotel)
}
