package router

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"
)

func SetupHelpRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	helpRequestHandler := handler.GetHelpRequestHandler()

	helpRequests := e.Group("/v1/help-requests")
	helpRequests.Use(authMiddleware.Authenticate)

	helpRequests.POST("", helpRequestHandler.SubmitHelpRequest)
	helpRequests.GET("", helpRequestHandler.ListHelpRequests)
}
