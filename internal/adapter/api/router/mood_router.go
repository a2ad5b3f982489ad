package router

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"
)

func SetupMoodRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	moodHandler := handler.GetMoodHandler()

	moods := e.Group("/v1/moods")
	moods.Use(authMiddleware.Authenticate)

	moods.POST("", moodHandler.RecordMood)
	moods.GET("/history", moodHandler.GetMoodHistory)
}
