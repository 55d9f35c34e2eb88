package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokerhand/internal/batch"
)

// Message is the envelope for every WebSocket message.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage encodes data into a message stamped with now.
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// Client → Server Messages

type RankHandData struct {
	Hand string `json:"hand"`
}

type RankHandsData struct {
	Hands []string `json:"hands"`
}

// Server → Client Messages

// HandRankedData carries either the category name or the validation message.
type HandRankedData = batch.Result

type HandsRankedData struct {
	Results []batch.Result `json:"results"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
