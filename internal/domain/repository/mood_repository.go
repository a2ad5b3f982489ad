package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

type MoodRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// ListByPatient returns the most recent entries first, at most limit.
	ListByPatient(ctx context.Context, patientID string, limit int) ([]*entity.MoodEntry, error)
}
