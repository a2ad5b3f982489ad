package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/response"
)

type ConversationHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewConversationHandler(messagingUseCase *usecase.MessagingUseCase) *ConversationHandler {
	return &ConversationHandler{
		messagingUseCase: messagingUseCase,
	}
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	Message        string `json:"message" validate:"required"`
}

// ListConversations returns the patient's conversation summaries, newest
// activity first. The payload shape is consumed directly by the portal UI,
// so it is returned unenveloped.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	patientID := c.Get("uid").(string)

	summaries, err := h.messagingUseCase.Summaries(c.Request().Context(), patientID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// GetConversationMessages returns the full transcript of one conversation in
// send order and marks the other participants' messages as read.
func (h *ConversationHandler) GetConversationMessages(c echo.Context) error {
	patientID := c.Get("uid").(string)
	conversationID := c.Param("id")

	messages, err := h.messagingUseCase.OpenConversation(c.Request().Context(), patientID, conversationID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

// SendMessage appends a message to a conversation the patient belongs to.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	if _, err := h.messagingUseCase.SendMessage(c.Request().Context(), senderID, usecase.SendMessageInput{
		ConversationID: req.ConversationID,
		Body:           req.Message,
	}); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
