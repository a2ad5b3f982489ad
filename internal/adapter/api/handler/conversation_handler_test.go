package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NandhanR354/lifeline/internal/adapter/api"
	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

// Minimal in-memory repositories so the handlers run against a real
// MessagingUseCase rather than a stubbed one.

type memConversationRepo struct {
	conversations map[string]*entity.Conversation
}

func (m *memConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	m.conversations[conversation.ID] = conversation
	return nil
}

func (m *memConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := m.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (m *memConversationRepo) ListByParticipant(ctx context.Context, participantID string) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, conversation := range m.conversations {
		if conversation.HasParticipant(participantID) {
			out = append(out, conversation)
		}
	}
	return out, nil
}

type memMessageRepo struct {
	convRepo *memConversationRepo
	messages map[string][]*entity.Message
}

func (m *memMessageRepo) Append(ctx context.Context, message *entity.Message) error {
	conversation, ok := m.convRepo.conversations[message.ConversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	message.Seq = conversation.MessageCount + 1
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	if message.ID == "" {
		message.ID = "msg-" + message.ConversationID
	}
	conversation.MessageCount++
	conversation.LastMessageAt = message.CreatedAt
	m.messages[message.ConversationID] = append(m.messages[message.ConversationID], message)
	return nil
}

func (m *memMessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	return m.messages[conversationID], nil
}

func (m *memMessageRepo) MarkRead(ctx context.Context, conversationID, viewerID string) (int, error) {
	flipped := 0
	for _, message := range m.messages[conversationID] {
		if message.SenderID != viewerID && !message.Read {
			message.Read = true
			flipped++
		}
	}
	return flipped, nil
}

func (m *memMessageRepo) LastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	messages := m.messages[conversationID]
	if len(messages) == 0 {
		return nil, nil
	}
	return messages[len(messages)-1], nil
}

func (m *memMessageRepo) UnreadCount(ctx context.Context, conversationID, viewerID string) (int, error) {
	count := 0
	for _, message := range m.messages[conversationID] {
		if !message.Read && message.SenderID != viewerID {
			count++
		}
	}
	return count, nil
}

type memPatientRepo struct{ patients map[string]*entity.Patient }

func (m *memPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	m.patients[patient.ID] = patient
	return nil
}

func (m *memPatientRepo) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := m.patients[id]
	if !ok {
		return nil, errors.NotFound("Patient", nil)
	}
	return patient, nil
}

func (m *memPatientRepo) GetByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	for _, patient := range m.patients {
		if patient.Email == email {
			return patient, nil
		}
	}
	return nil, errors.NotFound("Patient", nil)
}

func (m *memPatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	m.patients[patient.ID] = patient
	return nil
}

type memStaffRepo struct{ staff map[string]*entity.StaffMember }

func (m *memStaffRepo) Create(ctx context.Context, member *entity.StaffMember) error {
	m.staff[member.ID] = member
	return nil
}

func (m *memStaffRepo) GetByID(ctx context.Context, id string) (*entity.StaffMember, error) {
	member, ok := m.staff[id]
	if !ok {
		return nil, errors.NotFound("Staff member", nil)
	}
	return member, nil
}

func newMessagingHandler() *ConversationHandler {
	convRepo := &memConversationRepo{conversations: make(map[string]*entity.Conversation)}
	msgRepo := &memMessageRepo{convRepo: convRepo, messages: make(map[string][]*entity.Message)}

	patients := &memPatientRepo{patients: map[string]*entity.Patient{
		"patient-1": {ID: "patient-1", Name: "John Smith"},
	}}
	staff := &memStaffRepo{staff: map[string]*entity.StaffMember{
		"nurse_sarah": {ID: "nurse_sarah", Name: "Nurse Sarah", Role: "nurse"},
	}}

	now := time.Now()
	convRepo.Create(context.Background(), &entity.Conversation{
		ID:            "conv-1",
		Title:         "Nurse Sarah",
		Participants:  []string{"patient-1", "nurse_sarah"},
		CreatedAt:     now.Add(-2 * time.Hour),
		LastMessageAt: now.Add(-2 * time.Hour),
	})
	msgRepo.Append(context.Background(), &entity.Message{
		ConversationID: "conv-1",
		SenderID:       "nurse_sarah",
		Body:           "Your therapy session has been rescheduled to 11 AM today.",
		CreatedAt:      now.Add(-2 * time.Hour),
	})

	uc := usecase.NewMessagingUseCase(convRepo, msgRepo, usecase.NewRoster(patients, staff), 2000)
	return NewConversationHandler(uc)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "patient-1")
	return c, rec
}

func TestListConversationsPayload(t *testing.T) {
	h := newMessagingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/conversations", "")

	if assert.NoError(t, h.ListConversations(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var summaries []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
		require.Len(t, summaries, 1)

		for _, key := range []string{"id", "title", "last_message", "timestamp", "unread_count"} {
			assert.Contains(t, summaries[0], key)
		}
		assert.Equal(t, "Nurse Sarah", summaries[0]["title"])
		assert.Equal(t, "Your therapy session has been rescheduled to 11 AM today.", summaries[0]["last_message"])
		assert.Equal(t, float64(1), summaries[0]["unread_count"])
	}
}

func TestGetConversationMessagesPayload(t *testing.T) {
	h := newMessagingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/conversations/conv-1/messages", "")
	c.SetParamNames("id")
	c.SetParamValues("conv-1")

	if assert.NoError(t, h.GetConversationMessages(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var messages []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
		require.Len(t, messages, 1)

		for _, key := range []string{"id", "sender", "message", "timestamp", "is_own"} {
			assert.Contains(t, messages[0], key)
		}
		assert.Equal(t, "Nurse Sarah", messages[0]["sender"])
		assert.Equal(t, false, messages[0]["is_own"])
	}
}

func TestGetConversationMessagesNotFound(t *testing.T) {
	h := newMessagingHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/conversations/missing/messages", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	assert.NoError(t, h.GetConversationMessages(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessageSuccessPayload(t *testing.T) {
	h := newMessagingHandler()
	c, rec := newTestContext(t, http.MethodPost, "/v1/messages",
		`{"conversation_id": "conv-1", "message": "I'll be ready."}`)

	if assert.NoError(t, h.SendMessage(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "success"}`, rec.Body.String())
	}
}

func TestSendMessageValidation(t *testing.T) {
	h := newMessagingHandler()

	c, rec := newTestContext(t, http.MethodPost, "/v1/messages", `{"message": "no conversation"}`)
	assert.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newTestContext(t, http.MethodPost, "/v1/messages", `{"conversation_id": "conv-1", "message": "   "}`)
	assert.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed JSON fails at bind, not at validation, and still answers 400.
	c, rec = newTestContext(t, http.MethodPost, "/v1/messages", `{"conversation_id": "conv-1",`)
	assert.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageForbiddenForOutsiders(t *testing.T) {
	h := newMessagingHandler()
	c, rec := newTestContext(t, http.MethodPost, "/v1/messages",
		`{"conversation_id": "conv-1", "message": "hello"}`)
	c.Set("uid", "patient-9")

	assert.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
