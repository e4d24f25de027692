package models

// Place is a hotel/restaurant record. Location is nil when the document has
// no usable coordinates; such records are skipped by distance queries.
type Place struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Phone    string       `json:"phone"`
	Type     string       `json:"type"`
	Location *GeoLocation `json:"location,omitempty"`
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyHotel is the nearby-hotels response shape, with display defaults
// already substituted for missing fields.
type NearbyHotel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Type     string  `json:"type"`
	Distance float64 `json:"distance"`
}
