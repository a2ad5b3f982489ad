package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

type TreatmentTaskRepository interface {
	Create(ctx context.Context, task *entity.TreatmentTask) error
	GetByID(ctx context.Context, patientID, taskID string) (*entity.TreatmentTask, error)

	// ListByPatient returns tasks ordered by time of day.
	ListByPatient(ctx context.Context, patientID string) ([]*entity.TreatmentTask, error)
	Update(ctx context.Context, task *entity.TreatmentTask) error
}
