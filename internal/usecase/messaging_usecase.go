package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/internal/infrastructure/ratelimit"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

// noMessagesSentinel is what summaries show for a conversation nobody has
// written to yet.
const noMessagesSentinel = "no messages yet"

type MessagingUseCase struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	roster           *Roster
	rateLimiter      *ratelimit.RateLimiter
	maxMessageLength int
}

func NewMessagingUseCase(
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	roster *Roster,
	maxMessageLength int,
) *MessagingUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &MessagingUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		roster:           roster,
		rateLimiter:      rateLimiter,
		maxMessageLength: maxMessageLength,
	}
}

type SendMessageInput struct {
	ConversationID string
	Body           string
}

// ConversationSummary is the derived per-conversation view for the
// conversation list. It is computed on every request, never stored.
type ConversationSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	LastMessage string    `json:"last_message"`
	Timestamp   time.Time `json:"timestamp"`
	UnreadCount int       `json:"unread_count"`
}

// MessageView is a single rendered message. Sender carries the resolved
// display name, or "You" for the viewer's own messages.
type MessageView struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsOwn     bool      `json:"is_own"`
}

// SendMessage appends a message to a conversation the sender participates
// in. Sending is not idempotent: a retried call stores a second message.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	allowed, waitTime := uc.rateLimiter.Allow(senderID, "send_message")
	if !allowed {
		log.Printf("SendMessage Rate Limited: Patient %s must wait %v", senderID, waitTime)
		return nil, errors.TooManyRequests("You are sending messages too quickly. Please slow down")
	}

	if strings.TrimSpace(input.Body) == "" {
		return nil, errors.BadRequest("Message body must not be empty", nil)
	}
	if uc.maxMessageLength > 0 && len(input.Body) > uc.maxMessageLength {
		return nil, errors.BadRequest("Message body exceeds the maximum length", nil)
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, input.ConversationID)
	if err != nil {
		log.Printf("SendMessage Error: Conversation %s not found: %v", input.ConversationID, err)
		return nil, err
	}

	if !conversation.HasParticipant(senderID) {
		log.Printf("SendMessage Error: Sender %s is not a participant in conversation %s", senderID, input.ConversationID)
		return nil, errors.Forbidden("Sender is not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: input.ConversationID,
		SenderID:       senderID,
		Body:           input.Body,
	}

	if err := uc.messageRepo.Append(ctx, message); err != nil {
		log.Printf("SendMessage Error: Failed to append message to conversation %s: %v", input.ConversationID, err)
		return nil, err
	}

	return message, nil
}

// OpenConversation marks the viewer's unread messages read and returns the
// full message history, oldest first. The read transition commits before the
// list is read, so a summary issued right after sees the updated count.
func (uc *MessagingUseCase) OpenConversation(ctx context.Context, viewerID, conversationID string) ([]*MessageView, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		log.Printf("OpenConversation Error: Conversation %s not found: %v", conversationID, err)
		return nil, err
	}

	if !conversation.HasParticipant(viewerID) {
		log.Printf("OpenConversation Error: Viewer %s is not a participant in conversation %s", viewerID, conversationID)
		return nil, errors.Forbidden("Viewer is not a participant in this conversation", nil)
	}

	if _, err := uc.messageRepo.MarkRead(ctx, conversationID, viewerID); err != nil {
		log.Printf("OpenConversation Error: Failed to mark conversation %s as read: %v", conversationID, err)
		return nil, err
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		log.Printf("OpenConversation Error: Failed to list messages for conversation %s: %v", conversationID, err)
		return nil, err
	}

	senders := uc.resolveSenders(ctx, conversation, viewerID)

	views := make([]*MessageView, 0, len(messages))
	for _, message := range messages {
		sender, ok := senders[message.SenderID]
		if !ok {
			sender = uc.roster.Resolve(ctx, viewerID, message.SenderID)
		}

		views = append(views, &MessageView{
			ID:        message.ID,
			Sender:    sender.Label(),
			Message:   message.Body,
			Timestamp: message.CreatedAt,
			IsOwn:     sender.Kind == SenderSelf,
		})
	}

	return views, nil
}

// Summaries builds one summary per conversation the viewer participates in,
// ordered by last activity, newest first, with conversation id as the tie
// break so repeated calls on unchanged data agree. Counts and last messages
// are separate reads per conversation: a write racing between two calls can
// make back-to-back summaries disagree, which is the accepted contract.
func (uc *MessagingUseCase) Summaries(ctx context.Context, viewerID string) ([]*ConversationSummary, error) {
	conversations, err := uc.conversationRepo.ListByParticipant(ctx, viewerID)
	if err != nil {
		log.Printf("Summaries Error: Failed to list conversations for participant %s: %v", viewerID, err)
		return nil, err
	}

	summaries := make([]*ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		last, err := uc.messageRepo.LastMessage(ctx, conversation.ID)
		if err != nil {
			log.Printf("Summaries Error: Failed to fetch last message for conversation %s: %v", conversation.ID, err)
			return nil, err
		}

		unread, err := uc.messageRepo.UnreadCount(ctx, conversation.ID, viewerID)
		if err != nil {
			log.Printf("Summaries Error: Failed to count unread messages for conversation %s: %v", conversation.ID, err)
			return nil, err
		}

		summary := &ConversationSummary{
			ID:          conversation.ID,
			Title:       uc.titleFor(ctx, conversation, viewerID),
			UnreadCount: unread,
		}

		if last == nil {
			summary.LastMessage = noMessagesSentinel
			summary.Timestamp = conversation.CreatedAt
		} else {
			summary.LastMessage = last.Body
			summary.Timestamp = last.CreatedAt
		}

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Timestamp.Equal(summaries[j].Timestamp) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})

	return summaries, nil
}

// titleFor prefers the stored title; otherwise it joins the display names of
// everyone except the viewer, in participant order.
func (uc *MessagingUseCase) titleFor(ctx context.Context, conversation *entity.Conversation, viewerID string) string {
	if conversation.Title != "" {
		return conversation.Title
	}

	others := conversation.OtherParticipants(viewerID)
	names := make([]string, 0, len(others))
	for _, participantID := range others {
		names = append(names, uc.roster.DisplayName(ctx, participantID))
	}

	return strings.Join(names, ", ")
}

// resolveSenders resolves every participant once so rendering a long history
// does not hit the roster per message.
func (uc *MessagingUseCase) resolveSenders(ctx context.Context, conversation *entity.Conversation, viewerID string) map[string]Sender {
	senders := make(map[string]Sender, len(conversation.Participants))
	for _, participantID := range conversation.Participants {
		senders[participantID] = uc.roster.Resolve(ctx, viewerID, participantID)
	}
	return senders
}
