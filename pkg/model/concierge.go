package model

type ConciergeMessage struct {
	Message string `json:"message" validate:"required"`
}

// ConciergeTurn is the answer to one concierge call. Rejection is set when the
// utterance was refused and the dialog stayed where it was.
type ConciergeTurn struct {
	SessionID  string `json:"session_id"`
	State      string `json:"state"`
	Reply      string `json:"reply"`
	Rejection  string `json:"rejection,omitempty"`
	ResultsURL string `json:"results_url,omitempty"`
}
