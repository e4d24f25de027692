package handlers

import (
	"QuickBite/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(router *gin.RouterGroup, productController *controllers.ProductController) {
	router.GET("/products/:barcode", productController.GetProductByBarcode)
}
