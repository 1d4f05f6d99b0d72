// Package relevance decides whether a chat utterance is within the travel
// domain the concierge is allowed to discuss.
package relevance

import (
	"strings"

	"luxestay/pkg/sanitizer"
)

// Keywords are matched as lowercase substrings, so "hotels" and "booked"
// both match.
var Keywords = []string{
	"hotel", "booking", "reservation", "travel", "flight", "destination",
	"check-in", "check-out", "rooms", "vacation", "trip", "tour", "itinerary",
	"payment", "city", "stay", "guest", "check availability", "room type",
	"price", "rate", "accommodation", "lodging", "suite", "apartment",
	"hostel", "check room", "book", "my bookings", "cancel booking", "refund",
	"hotel info", "location", "address", "check status", "confirmation",
	"check price",
}

func IsTravelRelated(utterance string) bool {
	normalized := sanitizer.NormalizeUtterance(utterance)
	if normalized == "" {
		return false
	}
	for _, keyword := range Keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
