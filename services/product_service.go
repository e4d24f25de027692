package services

import (
	"QuickBite/utils"
	"log/slog"
	"net/http"

	"github.com/openfoodfacts/openfoodfacts-go"
)

// productAPI is the one OpenFoodFacts call the service depends on.
type productAPI interface {
	Product(code string) (*openfoodfacts.Product, error)
}

// ProductService answers dietary questions about packaged products sold
// alongside the menu, backed by OpenFoodFacts.
type ProductService struct {
	Client productAPI
	Logger *slog.Logger
}

func NewProductService(logger *slog.Logger) *ProductService {
	client := openfoodfacts.NewClient("world", "", "")
	return &ProductService{Client: &client, Logger: logger}
}

// AlcoholContent holds the alcohol-related nutriment values used for
// dietary screening.
type AlcoholContent struct {
	Value   float64 `json:"value"`
	Serving float64 `json:"serving"`
	Unit    string  `json:"unit"`
	Per100G float64 `json:"per_100g"`
}

// ProductDetail is the structured response for a barcode lookup.
type ProductDetail struct {
	Name            string         `json:"name"`
	IngredientsText string         `json:"ingredients_text"`
	IngredientsTags []string       `json:"ingredients_tags"`
	Alcohol         AlcoholContent `json:"alcohol"`
}

// GetProductByBarcode fetches product details; a nil result with a nil
// error means the barcode resolved to nothing usable.
func (s *ProductService) GetProductByBarcode(barcode string) (*ProductDetail, error) {
	product, err := s.Client.Product(barcode)
	if err != nil {
		s.Logger.Warn("Product lookup failed", slog.String("barcode", barcode), slog.Any("error", err))
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch product")
	}

	if product.ProductName == "" && product.IngredientsText == "" {
		return nil, nil
	}

	nutriments := product.Nutriments
	return &ProductDetail{
		Name:            product.ProductName,
		IngredientsText: product.IngredientsText,
		IngredientsTags: product.IngredientsTags,
		Alcohol: AlcoholContent{
			Value:   nutriments.AlcoholValue,
			Serving: nutriments.AlcoholServing,
			Unit:    nutriments.AlcoholUnit,
			Per100G: nutriments.Alcohol100G,
		},
	}, nil
}
