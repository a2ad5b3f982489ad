package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/internal/infrastructure/firebase"
	"github.com/NandhanR354/lifeline/pkg/response"
)

// DevTokenHandler mints ID tokens for local testing without going through
// the login flow. Its routes are only registered in development.
type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	patientRepo  repository.PatientRepository
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, patientRepo repository.PatientRepository) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		patientRepo:  patientRepo,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, patientRepo repository.PatientRepository) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, patientRepo)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// GeneratePatientToken returns an ID token for an existing patient.
func (h *DevTokenHandler) GeneratePatientToken(c echo.Context) error {
	patientID := c.Param("patientId")

	patient, err := h.patientRepo.GetByID(c.Request().Context(), patientID)
	if err != nil {
		return response.Error(c, err)
	}

	token, err := h.firebaseAuth.GenerateLongLivedToken(c.Request().Context(), patient.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"patient_id": patient.ID,
		"email":      patient.Email,
		"token":      token,
	})
}
