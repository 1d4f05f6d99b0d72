package normalize

import (
	"fmt"
	"math/rand/v2"

	"luxestay/pkg/model"
	"luxestay/pkg/sanitizer"
)

const (
	UnknownName        = "Unknown Hotel"
	UnknownDescription = "No description available."
	UnknownLocation    = "Unknown location"
)

var (
	idChain          = []accessor{field("property_token"), field("place_id")}
	nameChain        = []accessor{field("name"), field("title")}
	descriptionChain = []accessor{field("description"), field("summary", "text")}
	locationChain    = []accessor{field("address"), field("formatted_address"), field("localized_address")}
	priceChain       = []accessor{field("rate_per_night", "extracted_lowest"), field("prices", 0, "rate_per_night", "extracted_lowest")}
	ratingChain      = []accessor{field("overall_rating"), field("rating")}
	imageChain       = []accessor{field("image"), field("thumbnail"), field("original_image")}
	totalPriceChain  = []accessor{field("total_rate", "extracted_lowest")}
	detailWrappers   = []accessor{field("place_results"), field("property_data")}
)

// Hotel builds a record from one property object. fallbackID is used when the
// object carries neither a property token nor a place ID.
func Hotel(obj map[string]any, fallbackID string) model.Hotel {
	price, _ := firstNumber(obj, priceChain...)
	rating, _ := firstNumber(obj, ratingChain...)
	total, available := stayTotal(obj)

	return model.Hotel{
		ID:          firstString(obj, fallbackID, idChain...),
		Name:        firstString(obj, UnknownName, nameChain...),
		Description: firstString(obj, UnknownDescription, descriptionChain...),
		Location:    firstString(obj, UnknownLocation, locationChain...),
		Price:       price,
		Rating:      rating,
		Images:      images(obj),
		Amenities:   amenities(obj),
		TotalPrice:  total,
		Available:   available,
		DetailsLink: firstString(obj, "", field("serpapi_property_details_link")),
	}
}

// Detail unwraps a detail response (place_results, then property_data, then
// the object itself) and normalizes it.
func Detail(payload map[string]any, fallbackID string) model.Hotel {
	obj := payload
	if v, ok := first(payload, detailWrappers...); ok {
		if inner, ok := v.(map[string]any); ok {
			obj = inner
		}
	}
	return Hotel(obj, fallbackID)
}

// Search normalizes the properties list of a search response together with
// the pagination token.
func Search(payload map[string]any) *model.HotelSearchResult {
	result := &model.HotelSearchResult{Hotels: []model.Hotel{}}

	list, _ := payload["properties"].([]any)
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result.Hotels = append(result.Hotels, Hotel(obj, fmt.Sprintf("result_%d", i+1)))
	}

	result.NextPageToken = firstString(payload, "", field("serpapi_pagination", "next_page_token"))
	return result
}

// LinkFallbackID names records fetched by link that carry no identifier.
func LinkFallbackID() string {
	return fmt.Sprintf("from_link_%d", rand.IntN(9000)+1000)
}

func images(obj map[string]any) []string {
	var out []string
	list, _ := obj["images"].([]any)
	for _, item := range list {
		img, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if url := firstString(img, "", imageChain...); url != "" {
			out = append(out, url)
		}
	}
	if len(out) > 0 {
		return out
	}
	if thumb := firstString(obj, "", field("thumbnail")); thumb != "" {
		return []string{thumb}
	}
	return []string{model.PlaceholderImage}
}

func amenities(obj map[string]any) []string {
	list, _ := obj["amenities"].([]any)
	raw := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			raw = append(raw, s)
		}
	}
	return sanitizer.NormalizeAmenities(raw)
}

// stayTotal reads the stay total; a hotel is available iff the total is present.
func stayTotal(obj map[string]any) (float64, bool) {
	v := totalPriceChain[0](obj)
	n, ok := v.(float64)
	return n, ok
}
