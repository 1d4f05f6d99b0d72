package model

import "time"

type Booking struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	HotelName   string    `json:"hotel_name" bson:"hotel_name"`
	HotelID     string    `json:"hotel_id" bson:"hotel_id"`
	City        string    `json:"city" bson:"city"`
	CheckIn     string    `json:"check_in" bson:"check_in"`
	CheckOut    string    `json:"check_out" bson:"check_out"`
	RoomType    string    `json:"room_type" bson:"room_type"`
	TotalPrice  float64   `json:"total_price" bson:"total_price"`
	BookingDate time.Time `json:"booking_date" bson:"booking_date"`
}

type Payment struct {
	CardNumber string `json:"card_number" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	Cardholder string `json:"cardholder" validate:"required"`
}

// BookingRequest is the checkout payload. Payment details are validated and
// then dropped; they are never persisted.
type BookingRequest struct {
	UserID     string   `json:"user_id" validate:"required"`
	HotelName  string   `json:"hotel_name" validate:"required,max=200"`
	HotelID    string   `json:"hotel_id" validate:"required"`
	City       string   `json:"city" validate:"required"`
	CheckIn    string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	RoomType   string   `json:"room_type" validate:"required"`
	TotalPrice *float64 `json:"total_price" validate:"required,gte=0"`
	Payment    *Payment `json:"payment" validate:"required"`
}

func (r *BookingRequest) ToBooking() *Booking {
	b := &Booking{
		UserID:    r.UserID,
		HotelName: r.HotelName,
		HotelID:   r.HotelID,
		City:      r.City,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		RoomType:  r.RoomType,
	}
	if r.TotalPrice != nil {
		b.TotalPrice = *r.TotalPrice
	}
	return b
}

type BookingConfirmation struct {
	Message       string `json:"message"`
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
}

// BookingCreatedEvent is published after a booking is stored.
type BookingCreatedEvent struct {
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	HotelName     string    `json:"hotel_name"`
	City          string    `json:"city"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	RoomType      string    `json:"room_type"`
	TotalPrice    float64   `json:"total_price"`
	BookingDate   time.Time `json:"booking_date"`
}
