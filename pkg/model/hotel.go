package model

const PlaceholderImage = "/placeholder.svg"

// Hotel is the normalized hotel record served to clients. Built once by the
// normalizer and never mutated afterwards.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	TotalPrice  float64  `json:"total_price"`
	Available   bool     `json:"available"`
	DetailsLink string   `json:"details_link,omitempty"`
}

type HotelSearchResult struct {
	Hotels        []Hotel `json:"hotels"`
	NextPageToken string  `json:"next_page_token,omitempty"`
}
