package usecase

import (
	"context"
	"log"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/internal/infrastructure/ratelimit"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type HelpRequestUseCase struct {
	helpRequestRepo repository.HelpRequestRepository
	rateLimiter     *ratelimit.RateLimiter
}

func NewHelpRequestUseCase(helpRequestRepo repository.HelpRequestRepository) *HelpRequestUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &HelpRequestUseCase{
		helpRequestRepo: helpRequestRepo,
		rateLimiter:     rateLimiter,
	}
}

type SubmitHelpRequestInput struct {
	Priority    string
	Category    string
	Description string
}

func (uc *HelpRequestUseCase) Submit(ctx context.Context, patientID string, input SubmitHelpRequestInput) (*entity.HelpRequest, error) {
	allowed, waitTime := uc.rateLimiter.Allow(patientID, "help_request")
	if !allowed {
		log.Printf("Submit Rate Limited: Patient %s must wait %v", patientID, waitTime)
		return nil, errors.TooManyRequests("Too many help requests. Please wait before submitting another")
	}

	request := &entity.HelpRequest{
		PatientID:   patientID,
		Priority:    input.Priority,
		Category:    input.Category,
		Description: input.Description,
		Status:      "pending",
	}

	if err := uc.helpRequestRepo.Create(ctx, request); err != nil {
		log.Printf("Submit Error: Failed to create help request for patient %s: %v", patientID, err)
		return nil, err
	}

	return request, nil
}

func (uc *HelpRequestUseCase) ListForPatient(ctx context.Context, patientID string, limit int) ([]*entity.HelpRequest, error) {
	requests, err := uc.helpRequestRepo.ListByPatient(ctx, patientID, limit)
	if err != nil {
		log.Printf("ListForPatient Error: Failed to list help requests for patient %s: %v", patientID, err)
		return nil, err
	}

	return requests, nil
}
