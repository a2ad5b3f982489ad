package router

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"
)

func SetupTreatmentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	treatmentHandler := handler.GetTreatmentHandler()

	schedule := e.Group("/v1/schedule")
	schedule.Use(authMiddleware.Authenticate)

	schedule.GET("", treatmentHandler.GetSchedule)
	schedule.POST("/tasks/:id/status", treatmentHandler.UpdateTaskStatus)
}
