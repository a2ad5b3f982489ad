package router

import (
	"github.com/NandhanR354/lifeline/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}
	devTokenHandler := handler.GetDevTokenHandler()

	e.GET("/_dev/token/:patientId", devTokenHandler.GeneratePatientToken)
}
