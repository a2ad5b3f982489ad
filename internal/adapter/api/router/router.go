package router

import (
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware)
	SetupMoodRouter(e, authMiddleware)
	SetupHelpRequestRouter(e, authMiddleware)
	SetupTreatmentRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
