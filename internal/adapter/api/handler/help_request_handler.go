package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/response"
	"github.com/NandhanR354/lifeline/pkg/utils"
)

type HelpRequestHandler struct {
	helpRequestUseCase *usecase.HelpRequestUseCase
}

func NewHelpRequestHandler(helpRequestUseCase *usecase.HelpRequestUseCase) *HelpRequestHandler {
	return &HelpRequestHandler{
		helpRequestUseCase: helpRequestUseCase,
	}
}

type submitHelpRequest struct {
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
}

func (h *HelpRequestHandler) SubmitHelpRequest(c echo.Context) error {
	var req submitHelpRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	patientID := c.Get("uid").(string)

	request, err := h.helpRequestUseCase.Submit(c.Request().Context(), patientID, usecase.SubmitHelpRequestInput{
		Priority:    req.Priority,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *HelpRequestHandler) ListHelpRequests(c echo.Context) error {
	patientID := c.Get("uid").(string)
	limit := utils.GetLimitParam(c, 20, 100)

	requests, err := h.helpRequestUseCase.ListForPatient(c.Request().Context(), patientID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}
