package services

import (
	"QuickBite/utils"
	"errors"
	"net/http"
	"testing"

	"github.com/openfoodfacts/openfoodfacts-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductAPI struct {
	product *openfoodfacts.Product
	err     error
}

func (s *stubProductAPI) Product(code string) (*openfoodfacts.Product, error) {
	return s.product, s.err
}

func TestGetProductByBarcodePropagatesLookupFailure(t *testing.T) {
	svc := &ProductService{
		Client: &stubProductAPI{err: errors.New("upstream unavailable")},
		Logger: discardLogger(),
	}

	product, err := svc.GetProductByBarcode("4001234567890")

	assert.Nil(t, product)
	require.Error(t, err)
	customErr, ok := err.(*utils.CustomError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
}

func TestGetProductByBarcodeEmptyProductMeansNotFound(t *testing.T) {
	svc := &ProductService{
		Client: &stubProductAPI{product: &openfoodfacts.Product{}},
		Logger: discardLogger(),
	}

	product, err := svc.GetProductByBarcode("4001234567890")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProductByBarcodeMapsDetail(t *testing.T) {
	svc := &ProductService{
		Client: &stubProductAPI{product: &openfoodfacts.Product{
			ProductName:     "Sparkling Water",
			IngredientsText: "water, carbon dioxide",
		}},
		Logger: discardLogger(),
	}

	product, err := svc.GetProductByBarcode("4001234567890")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Sparkling Water", product.Name)
	assert.Equal(t, "water, carbon dioxide", product.IngredientsText)
}
