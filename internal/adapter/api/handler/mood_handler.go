package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/usecase"
	"github.com/NandhanR354/lifeline/pkg/response"
	"github.com/NandhanR354/lifeline/pkg/utils"
)

type MoodHandler struct {
	moodUseCase *usecase.MoodUseCase
}

func NewMoodHandler(moodUseCase *usecase.MoodUseCase) *MoodHandler {
	return &MoodHandler{
		moodUseCase: moodUseCase,
	}
}

type recordMoodRequest struct {
	Mood  string `json:"mood" validate:"required,oneof=great good okay low struggling"`
	Notes string `json:"notes" validate:"max=500"`
}

func (h *MoodHandler) RecordMood(c echo.Context) error {
	var req recordMoodRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	patientID := c.Get("uid").(string)

	entry, err := h.moodUseCase.RecordMood(c.Request().Context(), patientID, usecase.RecordMoodInput{
		Mood:  req.Mood,
		Notes: req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *MoodHandler) GetMoodHistory(c echo.Context) error {
	patientID := c.Get("uid").(string)
	limit := utils.GetLimitParam(c, 30, 100)

	entries, err := h.moodUseCase.History(c.Request().Context(), patientID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
