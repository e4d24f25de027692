package controllers

import (
	"QuickBite/services"
	"QuickBite/utils"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *services.ProductService
	Logger         *slog.Logger
}

func NewProductController(productService *services.ProductService, logger *slog.Logger) *ProductController {
	return &ProductController{ProductService: productService, Logger: logger}
}

// GetProductByBarcode looks up a packaged product's dietary details.
func (c *ProductController) GetProductByBarcode(ctx *gin.Context) {
	barcode := ctx.Param("barcode")

	product, err := c.ProductService.GetProductByBarcode(barcode)
	if err != nil {
		c.Logger.Error("Failed to fetch product", slog.String("barcode", barcode), slog.Any("error", err))
		ctx.Error(err)
		return
	}
	if product == nil {
		utils.ErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	ctx.JSON(http.StatusOK, product)
}
