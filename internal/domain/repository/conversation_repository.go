package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

// ConversationRepository tracks conversation records. Conversations are
// provisioned externally (seeding, care-team tooling); the portal itself
// never creates or deletes them, so there is no Delete.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*entity.Conversation, error)
}
