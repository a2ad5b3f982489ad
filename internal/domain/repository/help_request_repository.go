package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

type HelpRequestRepository interface {
	Create(ctx context.Context, request *entity.HelpRequest) error
	ListByPatient(ctx context.Context, patientID string, limit int) ([]*entity.HelpRequest, error)
}
