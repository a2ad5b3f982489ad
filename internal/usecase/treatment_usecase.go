package usecase

import (
	"context"
	"log"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

var validTaskStatuses = map[string]bool{
	"upcoming":  true,
	"pending":   true,
	"completed": true,
}

type TreatmentUseCase struct {
	taskRepo repository.TreatmentTaskRepository
}

func NewTreatmentUseCase(taskRepo repository.TreatmentTaskRepository) *TreatmentUseCase {
	return &TreatmentUseCase{
		taskRepo: taskRepo,
	}
}

func (uc *TreatmentUseCase) DailySchedule(ctx context.Context, patientID string) ([]*entity.TreatmentTask, error) {
	tasks, err := uc.taskRepo.ListByPatient(ctx, patientID)
	if err != nil {
		log.Printf("DailySchedule Error: Failed to list tasks for patient %s: %v", patientID, err)
		return nil, err
	}

	return tasks, nil
}

func (uc *TreatmentUseCase) UpdateTaskStatus(ctx context.Context, patientID, taskID, status string) (*entity.TreatmentTask, error) {
	if !validTaskStatuses[status] {
		return nil, errors.BadRequest("Status must be one of: upcoming, pending, completed", nil)
	}

	task, err := uc.taskRepo.GetByID(ctx, patientID, taskID)
	if err != nil {
		log.Printf("UpdateTaskStatus Error: Task %s not found for patient %s: %v", taskID, patientID, err)
		return nil, err
	}

	task.Status = status
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		log.Printf("UpdateTaskStatus Error: Failed to update task %s for patient %s: %v", taskID, patientID, err)
		return nil, err
	}

	return task, nil
}
