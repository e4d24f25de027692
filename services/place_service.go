package services

import (
	"QuickBite/models"
	"QuickBite/utils"
	"context"
	"net/http"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
)

const (
	nearbyLimit = 5

	defaultName    = "Name not available"
	defaultAddress = "Address not available"
	defaultPhone   = "Phone not available"
	defaultType    = "restaurant"
)

type PlaceService struct {
	FirestoreClient *firestore.Client
}

func NewPlaceService(client *firestore.Client) *PlaceService {
	return &PlaceService{FirestoreClient: client}
}

// GetAllHotels returns a snapshot of the hotels collection.
func (s *PlaceService) GetAllHotels(ctx context.Context) ([]models.Place, error) {
	iter := s.FirestoreClient.Collection("hotels").Documents(ctx)

	var places []models.Place
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch hotels")
		}
		places = append(places, placeFromDoc(doc.Ref.ID, doc.Data()))
	}
	return places, nil
}

// GetHotelByID resolves a menu item's hotelId foreign key.
func (s *PlaceService) GetHotelByID(ctx context.Context, id string) (*models.Place, error) {
	doc, err := s.FirestoreClient.Collection("hotels").Doc(id).Get(ctx)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "Hotel not found")
	}
	place := placeFromDoc(doc.Ref.ID, doc.Data())
	return &place, nil
}

// NearbyHotels ranks every hotel with usable coordinates by distance from
// the given point and returns the nearest 5.
func (s *PlaceService) NearbyHotels(ctx context.Context, latitude, longitude float64) ([]models.NearbyHotel, error) {
	places, err := s.GetAllHotels(ctx)
	if err != nil {
		return nil, err
	}
	return rankNearbyHotels(places, latitude, longitude, nearbyLimit), nil
}

func rankNearbyHotels(places []models.Place, latitude, longitude float64, limit int) []models.NearbyHotel {
	var hotels []models.NearbyHotel
	for _, place := range places {
		if place.Location == nil {
			continue
		}
		hotel := models.NearbyHotel{
			ID:       place.ID,
			Name:     place.Name,
			Address:  place.Address,
			Phone:    place.Phone,
			Type:     place.Type,
			Distance: utils.DistanceKm(latitude, longitude, place.Location.Latitude, place.Location.Longitude),
		}
		if hotel.Name == "" {
			hotel.Name = defaultName
		}
		if hotel.Address == "" {
			hotel.Address = defaultAddress
		}
		if hotel.Phone == "" {
			hotel.Phone = defaultPhone
		}
		if hotel.Type == "" {
			hotel.Type = defaultType
		}
		hotels = append(hotels, hotel)
	}

	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Distance < hotels[j].Distance
	})
	if len(hotels) > limit {
		hotels = hotels[:limit]
	}
	return hotels
}

// SaveHotel writes a hotel document carrying its generated ID in the id
// field and a geohash for proximity queries. The location is mandatory on
// the write path even though stored records may lack one.
func (s *PlaceService) SaveHotel(ctx context.Context, place *models.Place) (string, error) {
	if place.Location == nil {
		return "", utils.NewCustomError(http.StatusBadRequest, "Hotel location is required")
	}

	docRef := s.FirestoreClient.Collection("hotels").NewDoc()

	data := map[string]interface{}{
		"id":       docRef.ID,
		"name":     place.Name,
		"address":  place.Address,
		"phone":    place.Phone,
		"type":     place.Type,
		"location": &latlng.LatLng{Latitude: place.Location.Latitude, Longitude: place.Location.Longitude},
		"geohash":  geohash.Encode(place.Location.Latitude, place.Location.Longitude),
	}

	if _, err := docRef.Set(ctx, data); err != nil {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to save hotel")
	}
	return docRef.ID, nil
}

// HotelExists reports whether a hotel with this name already exists near the
// location, using the geohash prefix for a ~3 km bound.
func (s *PlaceService) HotelExists(ctx context.Context, latitude, longitude float64, name string) (bool, error) {
	targetGeoHash := geohash.Encode(latitude, longitude)
	geohashPrefix := targetGeoHash[:5]

	iter := s.FirestoreClient.Collection("hotels").
		Where("geohash", ">=", geohashPrefix).
		Where("geohash", "<=", geohashPrefix+"~").
		Where("name", "==", name).
		Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, utils.NewCustomError(http.StatusInternalServerError, "Failed to check hotel availability")
	}
	return true, nil
}

func placeFromDoc(id string, data map[string]interface{}) models.Place {
	place := models.Place{ID: id}
	place.Name, _ = data["name"].(string)
	place.Address, _ = data["address"].(string)
	place.Phone, _ = data["phone"].(string)
	place.Type, _ = data["type"].(string)

	// Coordinates come either as a GeoPoint or as loose latitude/longitude
	// fields, numeric or numeric-string.
	if point, ok := data["location"].(*latlng.LatLng); ok {
		place.Location = &models.GeoLocation{Latitude: point.Latitude, Longitude: point.Longitude}
		return place
	}
	lat, okLat := utils.Float(data["latitude"])
	lon, okLon := utils.Float(data["longitude"])
	if okLat && okLon {
		place.Location = &models.GeoLocation{Latitude: lat, Longitude: lon}
	}
	return place
}
