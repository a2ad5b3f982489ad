package entity

import "time"

type Conversation struct {
	ID            string    `json:"id" firestore:"id"`
	Title         string    `json:"title,omitempty" firestore:"title,omitempty"`
	Participants  []string  `json:"participants" firestore:"participants"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	MessageCount  int64     `json:"message_count" firestore:"messageCount"` // per-conversation sequence counter
}

func (c *Conversation) HasParticipant(participantID string) bool {
	for _, p := range c.Participants {
		if p == participantID {
			return true
		}
	}
	return false
}

// OtherParticipants returns the participant set minus viewerID, preserving
// the stored order.
func (c *Conversation) OtherParticipants(viewerID string) []string {
	others := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p != viewerID {
			others = append(others, p)
		}
	}
	return others
}
