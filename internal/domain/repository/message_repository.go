package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

// MessageRepository is the append-only message ledger. Append assigns the
// conversation-scoped sequence number and keeps timestamps non-decreasing in
// sequence order; it fails with NotFound when the conversation does not
// exist. Append is not idempotent: retrying a failed call can store the
// message twice.
type MessageRepository interface {
	Append(ctx context.Context, message *entity.Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]*entity.Message, error)

	// MarkRead flips read=false to true on every message not sent by
	// viewerID and returns how many were flipped. It runs atomically with
	// respect to concurrent Appends on the same conversation.
	MarkRead(ctx context.Context, conversationID, viewerID string) (int, error)

	// LastMessage returns the newest message, or nil when the conversation
	// has none.
	LastMessage(ctx context.Context, conversationID string) (*entity.Message, error)
	UnreadCount(ctx context.Context, conversationID, viewerID string) (int, error)
}
