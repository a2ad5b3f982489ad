package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.client.Collection("conversations").Doc(conversationID).Collection("messages")
}

// Append stores the message inside a transaction on the conversation
// document. The transaction assigns the next sequence number and clamps the
// timestamp against the conversation's lastMessageAt, so messages ordered by
// seq always carry non-decreasing timestamps even when writer clocks skew.
func (r *firestoreMessageRepository) Append(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	convRef := r.client.Collection("conversations").Doc(message.ConversationID)
	msgRef := convRef.Collection("messages").Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(convRef)
		if err != nil {
			return err
		}

		var conv entity.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return err
		}

		ts := message.CreatedAt
		if ts.IsZero() {
			ts = time.Now()
		}
		if ts.Before(conv.LastMessageAt) {
			ts = conv.LastMessageAt
		}

		message.Seq = conv.MessageCount + 1
		message.CreatedAt = ts
		message.Read = false

		if err := tx.Set(msgRef, message); err != nil {
			return err
		}

		return tx.Update(convRef, []firestore.Update{
			{Path: "messageCount", Value: message.Seq},
			{Path: "lastMessageAt", Value: message.CreatedAt},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to append message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	iter := r.messages(conversationID).OrderBy("seq", firestore.Asc).Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}

// MarkRead flips every unread foreign message inside a transaction that also
// reads the conversation document. Reading the document makes the commit
// conflict with any concurrent Append, which serializes the two per
// conversation: an appended message is either flipped here or left for the
// next call, never half processed.
func (r *firestoreMessageRepository) MarkRead(ctx context.Context, conversationID, viewerID string) (int, error) {
	convRef := r.client.Collection("conversations").Doc(conversationID)

	var flipped int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		flipped = 0

		if _, err := tx.Get(convRef); err != nil {
			return err
		}

		docs, err := tx.Documents(convRef.Collection("messages").Where("read", "==", false)).GetAll()
		if err != nil {
			return err
		}

		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				return err
			}
			if message.SenderID == viewerID {
				continue
			}

			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "read", Value: true},
			}); err != nil {
				return err
			}
			flipped++
		}

		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, errors.NotFound("Conversation", err)
		}
		return 0, errors.Internal("Failed to mark messages as read", err)
	}

	return flipped, nil
}

func (r *firestoreMessageRepository) LastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	iter := r.messages(conversationID).OrderBy("seq", firestore.Desc).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to fetch last message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

func (r *firestoreMessageRepository) UnreadCount(ctx context.Context, conversationID, viewerID string) (int, error) {
	docs, err := r.messages(conversationID).Where("read", "==", false).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while counting unread messages for conversation %s: %v", conversationID, err)
		return 0, errors.Internal("Failed to count unread messages", err)
	}

	count := 0
	for _, doc := range docs {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue // skip malformed documents
		}
		if message.SenderID != viewerID {
			count++
		}
	}

	return count, nil
}
