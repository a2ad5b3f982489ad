package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

type fakeMoodRepo struct {
	entries []*entity.MoodEntry
}

func (f *fakeMoodRepo) Create(ctx context.Context, entry *entity.MoodEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeMoodRepo) ListByPatient(ctx context.Context, patientID string, limit int) ([]*entity.MoodEntry, error) {
	var out []*entity.MoodEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].PatientID != patientID {
			continue
		}
		out = append(out, f.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestRecordMoodStoresEntry(t *testing.T) {
	repo := &fakeMoodRepo{}
	uc := NewMoodUseCase(repo)

	entry, err := uc.RecordMood(context.Background(), "patient-1", RecordMoodInput{
		Mood:  "good",
		Notes: "Therapy session went well",
	})
	require.NoError(t, err)

	assert.Equal(t, "patient-1", entry.PatientID)
	assert.Equal(t, "good", entry.Mood)
	assert.Len(t, repo.entries, 1)
}

func TestMoodHistoryNewestFirst(t *testing.T) {
	repo := &fakeMoodRepo{}
	uc := NewMoodUseCase(repo)

	uc.RecordMood(context.Background(), "patient-1", RecordMoodInput{Mood: "low"})
	uc.RecordMood(context.Background(), "patient-1", RecordMoodInput{Mood: "okay"})
	uc.RecordMood(context.Background(), "patient-1", RecordMoodInput{Mood: "good"})

	entries, err := uc.History(context.Background(), "patient-1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "good", entries[0].Mood)
	assert.Equal(t, "okay", entries[1].Mood)
}
