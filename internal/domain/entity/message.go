package entity

import "time"

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	Body           string    `json:"body" firestore:"body"`
	Read           bool      `json:"read" firestore:"read"` // false at creation, flips to true once
	Seq            int64     `json:"seq" firestore:"seq"`   // insertion order within the conversation
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
