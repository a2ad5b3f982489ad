package usecase

import (
	"context"
	"log"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
)

type MoodUseCase struct {
	moodRepo repository.MoodRepository
}

func NewMoodUseCase(moodRepo repository.MoodRepository) *MoodUseCase {
	return &MoodUseCase{
		moodRepo: moodRepo,
	}
}

type RecordMoodInput struct {
	Mood  string
	Notes string
}

func (uc *MoodUseCase) RecordMood(ctx context.Context, patientID string, input RecordMoodInput) (*entity.MoodEntry, error) {
	entry := &entity.MoodEntry{
		PatientID: patientID,
		Mood:      input.Mood,
		Notes:     input.Notes,
	}

	if err := uc.moodRepo.Create(ctx, entry); err != nil {
		log.Printf("RecordMood Error: Failed to store mood entry for patient %s: %v", patientID, err)
		return nil, err
	}

	return entry, nil
}

func (uc *MoodUseCase) History(ctx context.Context, patientID string, limit int) ([]*entity.MoodEntry, error) {
	entries, err := uc.moodRepo.ListByPatient(ctx, patientID, limit)
	if err != nil {
		log.Printf("History Error: Failed to list mood entries for patient %s: %v", patientID, err)
		return nil, err
	}

	return entries, nil
}
