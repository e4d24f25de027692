package services

import (
	"QuickBite/models"
	"QuickBite/utils"
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const popularRatingThreshold = 4.0

type MenuService struct {
	FirestoreClient *firestore.Client
}

func NewMenuService(client *firestore.Client) *MenuService {
	return &MenuService{FirestoreClient: client}
}

// GetAllMenus returns the full menus collection, one fresh snapshot per
// request.
func (s *MenuService) GetAllMenus(ctx context.Context) ([]models.MenuItem, error) {
	iter := s.FirestoreClient.Collection("menus").Documents(ctx)

	var menus []models.MenuItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch menus")
		}
		menus = append(menus, menuItemFromDoc(doc.Ref.ID, doc.Data()))
	}
	return menus, nil
}

// GetPopularMenus runs the store-side popularity query: rating >= 4.0,
// highest first, at most 5.
func (s *MenuService) GetPopularMenus(ctx context.Context) ([]models.MenuItem, error) {
	iter := s.FirestoreClient.Collection("menus").
		Where("rating", ">=", popularRatingThreshold).
		OrderBy("rating", firestore.Desc).
		Limit(5).
		Documents(ctx)

	var menus []models.MenuItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch popular items")
		}
		menus = append(menus, menuItemFromDoc(doc.Ref.ID, doc.Data()))
	}
	return menus, nil
}

// GetStoredRecommendations returns up to 5 pre-computed recommendation
// records verbatim, document ID merged in.
func (s *MenuService) GetStoredRecommendations(ctx context.Context) ([]map[string]interface{}, error) {
	iter := s.FirestoreClient.Collection("recommendations").Limit(5).Documents(ctx)

	var records []map[string]interface{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch recommendations")
		}
		record := doc.Data()
		record["id"] = doc.Ref.ID
		records = append(records, record)
	}
	return records, nil
}

func menuItemFromDoc(id string, data map[string]interface{}) models.MenuItem {
	item := models.MenuItem{ID: id, Extra: make(map[string]interface{})}
	for key, value := range data {
		switch key {
		case "id":
			// The document ID wins over any stored copy.
		case "productTitle":
			item.Title, _ = value.(string)
		case "rating":
			if rating, ok := utils.Float(value); ok {
				item.Rating = &rating
			}
		case "mealType":
			item.MealType, _ = value.(string)
		case "hotelId":
			item.HotelID, _ = value.(string)
		default:
			item.Extra[key] = value
		}
	}
	return item
}
