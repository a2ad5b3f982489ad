package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/response"
)

type TreatmentHandler struct {
	treatmentUseCase *usecase.TreatmentUseCase
}

func NewTreatmentHandler(treatmentUseCase *usecase.TreatmentUseCase) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUseCase: treatmentUseCase,
	}
}

type updateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming pending completed"`
}

// GetSchedule returns the patient's treatment tasks ordered by time of day.
func (h *TreatmentHandler) GetSchedule(c echo.Context) error {
	patientID := c.Get("uid").(string)

	tasks, err := h.treatmentUseCase.DailySchedule(c.Request().Context(), patientID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tasks)
}

func (h *TreatmentHandler) UpdateTaskStatus(c echo.Context) error {
	var req updateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	patientID := c.Get("uid").(string)
	taskID := c.Param("id")

	task, err := h.treatmentUseCase.UpdateTaskStatus(c.Request().Context(), patientID, taskID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, task)
}
