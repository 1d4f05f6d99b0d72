// Package dialog is the slot-filling booking conversation. Transition is
// pure: it never performs I/O and returns any required side effect to the
// caller as an Effect.
package dialog

import (
	"strconv"
	"strings"
	"time"

	"luxestay/internal/concierge/relevance"
)

const DateLayout = "2006-01-02"

const (
	MinPartySize = 1
	MaxPartySize = 8
	MinRoomCount = 1
	MaxRoomCount = 5
)

var cancelWords = []string{"cancel", "stop"}

type Slots struct {
	Destination string `json:"destination,omitempty"`
	CheckIn     string `json:"check_in,omitempty"`
	CheckOut    string `json:"check_out,omitempty"`
	PartySize   int    `json:"party_size,omitempty"`
	RoomCount   int    `json:"room_count,omitempty"`
}

type Session struct {
	State State `json:"state"`
	Slots Slots `json:"slots"`
}

type Effect int

const (
	EffectNone Effect = iota
	// EffectChat asks the caller to answer the utterance with the chat model.
	EffectChat
	// EffectSearch asks the caller to run Outcome.Search.
	EffectSearch
)

type SearchRequest struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	PartySize   int    `json:"party_size"`
	RoomCount   int    `json:"room_count"`
}

type Outcome struct {
	Reply  string
	Err    error
	Effect Effect
	Search *SearchRequest
}

func (o Outcome) Rejected() bool {
	return o.Err != nil
}

// Transition applies one utterance to the session. today is only read for
// its calendar date.
func Transition(s Session, utterance string, today time.Time) (Session, Outcome) {
	input := strings.TrimSpace(utterance)

	if s.State != Idle && isCancel(input) {
		return Session{State: Idle}, Outcome{Reply: ReplyCancelled}
	}

	switch s.State {
	case AwaitingDestination:
		s.Slots.Destination = input
		s.State = AwaitingCheckIn
		return s, Outcome{Reply: ReplyAskCheckIn}

	case AwaitingCheckIn:
		checkIn, err := time.Parse(DateLayout, input)
		if err != nil {
			return s, reject(ErrInvalidDate, ReplyInvalidDate)
		}
		if checkIn.Before(dateOf(today)) {
			return s, reject(ErrDateInPast, ReplyDateInPast)
		}
		s.Slots.CheckIn = checkIn.Format(DateLayout)
		s.State = AwaitingCheckOut
		return s, Outcome{Reply: ReplyAskCheckOut}

	case AwaitingCheckOut:
		checkOut, err := time.Parse(DateLayout, input)
		if err != nil {
			return s, reject(ErrInvalidDate, ReplyInvalidDate)
		}
		checkIn, err := time.Parse(DateLayout, s.Slots.CheckIn)
		if err != nil || !checkOut.After(checkIn) {
			return s, reject(ErrCheckOutNotAfterCheckIn, ReplyCheckOutTooEarly)
		}
		s.Slots.CheckOut = checkOut.Format(DateLayout)
		s.State = AwaitingPartySize
		return s, Outcome{Reply: ReplyAskPartySize}

	case AwaitingPartySize:
		n, err := strconv.Atoi(input)
		if err != nil {
			return s, reject(ErrInvalidNumber, ReplyInvalidPartySize)
		}
		if n < MinPartySize || n > MaxPartySize {
			return s, reject(ErrPartySizeOutOfRange, ReplyPartySizeOutOfRange)
		}
		s.Slots.PartySize = n
		s.State = AwaitingRoomCount
		return s, Outcome{Reply: ReplyAskRoomCount}

	case AwaitingRoomCount:
		n, err := strconv.Atoi(input)
		if err != nil {
			return s, reject(ErrInvalidNumber, ReplyInvalidRoomCount)
		}
		if n < MinRoomCount || n > MaxRoomCount {
			return s, reject(ErrRoomCountOutOfRange, ReplyRoomCountOutOfRange)
		}
		search := &SearchRequest{
			Destination: s.Slots.Destination,
			CheckIn:     s.Slots.CheckIn,
			CheckOut:    s.Slots.CheckOut,
			PartySize:   s.Slots.PartySize,
			RoomCount:   n,
		}
		return Session{State: Idle}, Outcome{Effect: EffectSearch, Search: search}

	default:
		return idle(s, input)
	}
}

func idle(s Session, input string) (Session, Outcome) {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "book") && strings.Contains(lower, "hotel"):
		return Session{State: AwaitingDestination}, Outcome{Reply: ReplyAskDestination}
	case !relevance.IsTravelRelated(input):
		return s, Outcome{Reply: ReplyOutOfScope}
	default:
		return s, Outcome{Effect: EffectChat}
	}
}

func reject(err error, reply string) Outcome {
	return Outcome{Reply: reply, Err: err}
}

func isCancel(input string) bool {
	for _, word := range cancelWords {
		if strings.EqualFold(input, word) {
			return true
		}
	}
	return false
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
