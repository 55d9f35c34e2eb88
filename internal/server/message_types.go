package server

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server messages
	MessageTypeRankHand  MessageType = "rank_hand"
	MessageTypeRankHands MessageType = "rank_hands"

	// Server to client messages
	MessageTypeHandRanked  MessageType = "hand_ranked"
	MessageTypeHandsRanked MessageType = "hands_ranked"
	MessageTypeError       MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes sent in ErrorData.Code
const (
	ErrorCodeInvalidMessage     = "invalid_message"
	ErrorCodeUnknownMessageType = "unknown_message_type"
	ErrorCodeCancelled          = "cancelled"
)
