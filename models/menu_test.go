package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemMarshalMergesExtra(t *testing.T) {
	rating := 4.5
	item := MenuItem{
		ID:     "1",
		Title:  "Veg Burger",
		Rating: &rating,
		Extra: map[string]interface{}{
			"imageUrl": "https://cdn.example.com/veg-burger.png",
		},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "1", out["id"])
	assert.Equal(t, "Veg Burger", out["productTitle"])
	assert.Equal(t, 4.5, out["rating"])
	assert.Equal(t, "https://cdn.example.com/veg-burger.png", out["imageUrl"])
}

func TestMenuItemMarshalOmitsMissingOptionals(t *testing.T) {
	raw, err := json.Marshal(MenuItem{ID: "2", Title: "Chicken Wrap"})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.NotContains(t, out, "rating")
	assert.NotContains(t, out, "mealType")
	assert.NotContains(t, out, "hotelId")
}

func TestRecommendationMarshalAddsDistance(t *testing.T) {
	distance := 2.4
	rec := Recommendation{
		Item:     MenuItem{ID: "1", Title: "Veg Burger"},
		Distance: &distance,
	}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 2.4, out["distance"])
	assert.Equal(t, "Veg Burger", out["productTitle"])

	bare, err := json.Marshal(Recommendation{Item: MenuItem{ID: "1", Title: "Veg Burger"}})
	require.NoError(t, err)
	var bareOut map[string]interface{}
	require.NoError(t, json.Unmarshal(bare, &bareOut))
	assert.NotContains(t, bareOut, "distance")
}
