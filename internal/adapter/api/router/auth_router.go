package router

import (
	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"
	"github.com/NandhanR354/lifeline/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth and patient profile routes.
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes, throttled against credential stuffing
	e.POST("/v1/auth/register", authHandler.Register, middleware.AuthRateLimit())
	e.POST("/v1/auth/login", authHandler.Login, middleware.AuthRateLimit())
	e.POST("/v1/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	patients := e.Group("/v1/patients")
	patients.Use(authMiddleware.Authenticate)

	patients.GET("/me", authHandler.Me)
}
