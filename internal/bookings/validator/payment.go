package validator

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"luxestay/pkg/model"
)

const PaymentErrorMessage = "Invalid payment details. Please use a 16-digit card number, MM/YY expiry format, 3-digit CVV, and enter the cardholder name."

// IsCardNumberValid checks length only; no Luhn check is performed.
func IsCardNumberValid(cardNumber string) bool {
	return utf8.RuneCountInString(cardNumber) == 16
}

func IsCvvValid(cvv string) bool {
	return utf8.RuneCountInString(cvv) == 3
}

func IsExpiryValid(expiry string) bool {
	return IsExpiryValidAt(expiry, time.Now())
}

// IsExpiryValidAt parses MM/YY and reports whether the card is still valid in
// the month containing now. A card expiring this month is valid.
func IsExpiryValidAt(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}

	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	return year > currentYear || (year == currentYear && month >= currentMonth)
}

// IsPaymentValid requires every card check to pass and a cardholder name.
func IsPaymentValid(p *model.Payment, now time.Time) bool {
	if p == nil {
		return false
	}
	return IsCardNumberValid(p.CardNumber) &&
		IsExpiryValidAt(p.Expiry, now) &&
		IsCvvValid(p.CVV) &&
		strings.TrimSpace(p.Cardholder) != ""
}
