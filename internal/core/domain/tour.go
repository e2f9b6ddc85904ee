package domain

import "time"

// Coordinates represents a geographic point shown on the catalog map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Tour is a bookable catalog entry owned by a guide (or an admin).
type Tour struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Duration    string      `json:"duration"`
	Location    string      `json:"location"`
	ImageURL    string      `json:"image_url"`
	Coordinates Coordinates `json:"coordinates"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
