package dialog

import "fmt"

type State int

const (
	Idle State = iota
	AwaitingDestination
	AwaitingCheckIn
	AwaitingCheckOut
	AwaitingPartySize
	AwaitingRoomCount
)

var stateNames = map[State]string{
	Idle:                "idle",
	AwaitingDestination: "awaiting_destination",
	AwaitingCheckIn:     "awaiting_check_in",
	AwaitingCheckOut:    "awaiting_check_out",
	AwaitingPartySize:   "awaiting_party_size",
	AwaitingRoomCount:   "awaiting_room_count",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown dialog state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown dialog state %q", string(text))
}
