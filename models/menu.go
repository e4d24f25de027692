package models

import "encoding/json"

// MenuItem is a single dish from the menus collection. The fields the API
// inspects are typed; everything else a document carries rides in Extra and
// is emitted back to clients untouched.
type MenuItem struct {
	ID       string
	Title    string
	Rating   *float64
	MealType string
	HotelID  string
	Extra    map[string]interface{}
}

// MarshalJSON merges the pass-through fields with the typed ones. Typed
// fields win on key collisions.
func (m MenuItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Extra)+5)
	for key, value := range m.Extra {
		out[key] = value
	}
	out["id"] = m.ID
	out["productTitle"] = m.Title
	if m.Rating != nil {
		out["rating"] = *m.Rating
	}
	if m.MealType != "" {
		out["mealType"] = m.MealType
	}
	if m.HotelID != "" {
		out["hotelId"] = m.HotelID
	}
	return json.Marshal(out)
}

// RecommendationCandidate is one entry of the model's ranked reply. It only
// lives between reply parsing and id resolution.
type RecommendationCandidate struct {
	ID        string  `json:"id"`
	Relevance float64 `json:"relevance"`
}

// Resolution is the outcome of a recommendation request. Degraded is set
// when the model call or its reply could not be used and the list was forced
// empty; callers still treat it as a success.
type Resolution struct {
	Items    []MenuItem
	Degraded bool
}

// Recommendation is a resolved menu item, optionally enriched with the
// distance in kilometers to its hotel when location context was supplied.
type Recommendation struct {
	Item     MenuItem
	Distance *float64
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(r.Item)
	if err != nil {
		return nil, err
	}
	if r.Distance == nil {
		return raw, nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out["distance"] = *r.Distance
	return json.Marshal(out)
}
