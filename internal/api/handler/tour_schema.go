package handler

// tourRequest is the write payload for creating and updating tours.
type tourRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Duration    string  `json:"duration"    validate:"required"`
	Location    string  `json:"location"    validate:"required"`
	ImageURL    string  `json:"image_url"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type saveTourRequest struct {
	TourID string `json:"tour_id" validate:"required"`
}

type cartAddRequest struct {
	TourID string `json:"tour_id" validate:"required"`
}

// purchaseRequest carries the checkout payment form. The fields are
// accepted for contract compatibility and discarded: nothing is charged
// and nothing is stored.
type purchaseRequest struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type profileRequest struct {
	Name         string `json:"name" validate:"required"`
	ProfileImage string `json:"profile_image"`
}

type messageResponse struct {
	Message string `json:"message"`
}
