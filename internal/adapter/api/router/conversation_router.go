package router

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"
)

// SetupConversationRouter sets up the messaging routes.
func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)

	conversations.GET("", conversationHandler.ListConversations)               // GET /v1/conversations - conversation summaries
	conversations.GET("/:id/messages", conversationHandler.GetConversationMessages) // GET /v1/conversations/:id/messages - transcript, marks read

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", conversationHandler.SendMessage) // POST /v1/messages - append to a conversation
}
