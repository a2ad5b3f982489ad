package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type fakeTreatmentRepo struct {
	tasks map[string]*entity.TreatmentTask
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{tasks: make(map[string]*entity.TreatmentTask)}
}

func (f *fakeTreatmentRepo) key(patientID, taskID string) string {
	return patientID + "/" + taskID
}

func (f *fakeTreatmentRepo) Create(ctx context.Context, task *entity.TreatmentTask) error {
	f.tasks[f.key(task.PatientID, task.ID)] = task
	return nil
}

func (f *fakeTreatmentRepo) GetByID(ctx context.Context, patientID, taskID string) (*entity.TreatmentTask, error) {
	task, ok := f.tasks[f.key(patientID, taskID)]
	if !ok {
		return nil, errors.NotFound("Treatment task", nil)
	}
	return task, nil
}

func (f *fakeTreatmentRepo) ListByPatient(ctx context.Context, patientID string) ([]*entity.TreatmentTask, error) {
	var tasks []*entity.TreatmentTask
	for _, task := range f.tasks {
		if task.PatientID == patientID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].TimeOfDay < tasks[j].TimeOfDay })
	return tasks, nil
}

func (f *fakeTreatmentRepo) Update(ctx context.Context, task *entity.TreatmentTask) error {
	f.tasks[f.key(task.PatientID, task.ID)] = task
	return nil
}

func TestDailyScheduleOrdersByTimeOfDay(t *testing.T) {
	repo := newFakeTreatmentRepo()
	repo.Create(context.Background(), &entity.TreatmentTask{ID: "t1", PatientID: "patient-1", Title: "Doctor's Consultation", TimeOfDay: "14:00"})
	repo.Create(context.Background(), &entity.TreatmentTask{ID: "t2", PatientID: "patient-1", Title: "Morning Medication", TimeOfDay: "08:00"})
	repo.Create(context.Background(), &entity.TreatmentTask{ID: "t3", PatientID: "patient-2", Title: "Physical Therapy", TimeOfDay: "10:00"})

	uc := NewTreatmentUseCase(repo)

	tasks, err := uc.DailySchedule(context.Background(), "patient-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Morning Medication", tasks[0].Title)
	assert.Equal(t, "Doctor's Consultation", tasks[1].Title)
}

func TestUpdateTaskStatus(t *testing.T) {
	repo := newFakeTreatmentRepo()
	repo.Create(context.Background(), &entity.TreatmentTask{ID: "t1", PatientID: "patient-1", Status: "upcoming"})

	uc := NewTreatmentUseCase(repo)

	task, err := uc.UpdateTaskStatus(context.Background(), "patient-1", "t1", "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", task.Status)

	stored, _ := repo.GetByID(context.Background(), "patient-1", "t1")
	assert.Equal(t, "completed", stored.Status)
}

func TestUpdateTaskStatusValidatesInput(t *testing.T) {
	uc := NewTreatmentUseCase(newFakeTreatmentRepo())

	_, err := uc.UpdateTaskStatus(context.Background(), "patient-1", "t1", "done")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateTaskStatus(context.Background(), "patient-1", "missing", "completed")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
