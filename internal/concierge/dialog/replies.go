package dialog

const (
	Greeting     = "Hi! I'm your travel assistant. How can I help you today?"
	ClearedReply = "Conversation cleared."

	ReplyAskDestination = "Sure! What is your destination?"
	ReplyOutOfScope     = "I do not have access to this information. I can only assist with hotel and travel-related topics."
	ReplyAskCheckIn     = "When do you want to check in? (YYYY-MM-DD)"
	ReplyAskCheckOut    = "When do you want to check out? (YYYY-MM-DD)"
	ReplyAskPartySize   = "How many people are staying? (1-8)"
	ReplyAskRoomCount   = "How many rooms do you need? (1-5)"
	ReplyCancelled      = "Booking cancelled."

	ReplyInvalidDate         = "Invalid date format. Please use YYYY-MM-DD (e.g., 2025-03-26)."
	ReplyDateInPast          = "Check-in date must be today or in the future."
	ReplyCheckOutTooEarly    = "Check-out date must be at least one day after the check-in date."
	ReplyInvalidPartySize    = "Please enter a valid number (e.g., 2)."
	ReplyPartySizeOutOfRange = "Number of people must be between 1 and 8."
	ReplyInvalidRoomCount    = "Please enter a valid number (e.g., 1)."
	ReplyRoomCountOutOfRange = "Number of rooms must be between 1 and 5."
)
