package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Name          string `json:"name" validate:"required,min=2"`
	PatientNumber string `json:"patient_number" validate:"required"`
	Room          string `json:"room"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type patientResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PatientNumber string    `json:"patient_number"`
	Room          string    `json:"room,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	AdmittedAt    time.Time `json:"admitted_at"`
}

type authResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Patient      patientResponse `json:"patient"`
}

func toPatientResponse(p *entity.Patient) patientResponse {
	return patientResponse{
		ID:            p.ID,
		Email:         p.Email,
		Name:          p.Name,
		PatientNumber: p.PatientNumber,
		Room:          p.Room,
		Condition:     p.Condition,
		AdmittedAt:    p.AdmittedAt,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		PatientNumber: req.PatientNumber,
		Room:          req.Room,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Patient:      toPatientResponse(result.Patient),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Patient:      toPatientResponse(result.Patient),
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		Patient:      toPatientResponse(result.Patient),
	})
}

// Me returns the profile of the authenticated patient.
func (h *AuthHandler) Me(c echo.Context) error {
	patientID := c.Get("uid").(string)

	patient, err := h.authUseCase.GetPatientByID(c.Request().Context(), patientID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toPatientResponse(patient))
}
