package router

import (
	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/firestore", healthHandler.CheckFirestoreHealth)
	e.GET("/health/auth", healthHandler.CheckAuthHealth)
}
