package gateway

import (
	"net/url"
	"strconv"
)

// Locale controls currency and localisation of upstream results. Empty fields
// fall back to the gateway defaults.
type Locale struct {
	Currency string
	Country  string
	Language string
}

// SearchOptions mirrors the Google Hotels engine parameters. Zero values are
// not sent.
type SearchOptions struct {
	Query         string
	CheckInDate   string
	CheckOutDate  string
	Adults        int
	Rooms         int
	SortBy        string
	MinPrice      int
	MaxPrice      int
	PropertyTypes string
	Amenities     string
	Rating        string
	Brands        string
	HotelClass    string
	Bedrooms      int
	Bathrooms     int
	NextPageToken string

	FreeCancellation bool
	SpecialOffers    bool
	EcoCertified     bool
	VacationRentals  bool

	Locale Locale
}

func (o SearchOptions) values() url.Values {
	v := url.Values{}
	setString(v, "q", o.Query)
	setString(v, "check_in_date", o.CheckInDate)
	setString(v, "check_out_date", o.CheckOutDate)
	setInt(v, "adults", o.Adults)
	setInt(v, "rooms", o.Rooms)
	setString(v, "sort_by", o.SortBy)
	setInt(v, "min_price", o.MinPrice)
	setInt(v, "max_price", o.MaxPrice)
	setString(v, "property_types", o.PropertyTypes)
	setString(v, "amenities", o.Amenities)
	setString(v, "rating", o.Rating)
	setString(v, "brands", o.Brands)
	setString(v, "hotel_class", o.HotelClass)
	setInt(v, "bedrooms", o.Bedrooms)
	setInt(v, "bathrooms", o.Bathrooms)
	setString(v, "next_page_token", o.NextPageToken)
	setBool(v, "free_cancellation", o.FreeCancellation)
	setBool(v, "special_offers", o.SpecialOffers)
	setBool(v, "eco_certified", o.EcoCertified)
	setBool(v, "vacation_rentals", o.VacationRentals)
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// setInt drops zero and negative values; "0" means unset for every bound.
func setInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}

func setBool(v url.Values, key string, value bool) {
	if value {
		v.Set(key, "true")
	}
}
