package services

import (
	"QuickBite/models"
	"QuickBite/utils"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankNearbyHotelsOrdersByDistance(t *testing.T) {
	places := []models.Place{
		{ID: "far", Name: "Far Hotel", Location: &models.GeoLocation{Latitude: 0, Longitude: 2}},
		{ID: "near", Name: "Near Hotel", Location: &models.GeoLocation{Latitude: 0, Longitude: 1}},
		{ID: "nowhere", Name: "No Coordinates"},
	}

	hotels := rankNearbyHotels(places, 0, 0, nearbyLimit)

	require.Len(t, hotels, 2)
	assert.Equal(t, "near", hotels[0].ID)
	assert.Equal(t, "far", hotels[1].ID)
	assert.Less(t, hotels[0].Distance, hotels[1].Distance)
}

func TestRankNearbyHotelsSubstitutesDefaults(t *testing.T) {
	places := []models.Place{
		{ID: "h1", Location: &models.GeoLocation{Latitude: 1, Longitude: 1}},
	}

	hotels := rankNearbyHotels(places, 0, 0, nearbyLimit)

	require.Len(t, hotels, 1)
	assert.Equal(t, "Name not available", hotels[0].Name)
	assert.Equal(t, "Address not available", hotels[0].Address)
	assert.Equal(t, "Phone not available", hotels[0].Phone)
	assert.Equal(t, "restaurant", hotels[0].Type)
}

func TestRankNearbyHotelsLimitsToFive(t *testing.T) {
	var places []models.Place
	for i := 1; i <= 7; i++ {
		places = append(places, models.Place{
			ID:       fmt.Sprint(i),
			Location: &models.GeoLocation{Latitude: 0, Longitude: float64(i)},
		})
	}

	hotels := rankNearbyHotels(places, 0, 0, nearbyLimit)

	require.Len(t, hotels, 5)
	assert.Equal(t, "1", hotels[0].ID)
	assert.Equal(t, "5", hotels[4].ID)
}

func TestSaveHotelRequiresLocation(t *testing.T) {
	svc := NewPlaceService(nil)

	id, err := svc.SaveHotel(context.Background(), &models.Place{Name: "Spice Garden"})

	assert.Empty(t, id)
	require.Error(t, err)
	customErr, ok := err.(*utils.CustomError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
}

func TestPlaceFromDocGeoPointAndLooseFields(t *testing.T) {
	loose := placeFromDoc("h1", map[string]interface{}{
		"name":      "Spice Garden",
		"latitude":  "12.97",
		"longitude": 77.59,
	})
	require.NotNil(t, loose.Location)
	assert.Equal(t, 12.97, loose.Location.Latitude)
	assert.Equal(t, 77.59, loose.Location.Longitude)

	missing := placeFromDoc("h2", map[string]interface{}{
		"name":     "No Location",
		"latitude": "not-a-number",
	})
	assert.Nil(t, missing.Location)
}
