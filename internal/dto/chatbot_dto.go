package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
	Topic   string `json:"topic,omitempty"` // optional: force retrieval to favor this topic
}

type SendChatResponseChat struct {
	Id        uuid.UUID `json:"id"`
	Chat      string    `json:"chat"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	Sent     *SendChatResponseChat `json:"sent"`
	Reply    *SendChatResponseChat `json:"reply"`
	Topic    string                `json:"topic,omitempty"` // detected topic, absent on refusal
	Grounded bool                  `json:"grounded"`        // false means the fixed refusal was returned
}

type TopicInfoResponse struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}
