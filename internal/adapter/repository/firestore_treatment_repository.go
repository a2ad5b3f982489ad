package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestoreTreatmentTaskRepository struct {
	client *firestore.Client
}

func NewFirestoreTreatmentTaskRepository(client *firestore.Client) repository.TreatmentTaskRepository {
	return &firestoreTreatmentTaskRepository{
		client: client,
	}
}

func (r *firestoreTreatmentTaskRepository) tasks(patientID string) *firestore.CollectionRef {
	return r.client.Collection("patients").Doc(patientID).Collection("treatment_tasks")
}

func (r *firestoreTreatmentTaskRepository) Create(ctx context.Context, task *entity.TreatmentTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.tasks(task.PatientID).Doc(task.ID).Set(ctx, task)
	if err != nil {
		return errors.Internal("Failed to create treatment task", err)
	}

	return nil
}

func (r *firestoreTreatmentTaskRepository) GetByID(ctx context.Context, patientID, taskID string) (*entity.TreatmentTask, error) {
	doc, err := r.tasks(patientID).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Treatment task", nil)
		}
		return nil, errors.Internal("Failed to get treatment task", err)
	}

	var task entity.TreatmentTask
	if err := doc.DataTo(&task); err != nil {
		return nil, errors.Internal("Failed to parse treatment task data", err)
	}

	return &task, nil
}

func (r *firestoreTreatmentTaskRepository) ListByPatient(ctx context.Context, patientID string) ([]*entity.TreatmentTask, error) {
	// timeOfDay is a zero-padded 24h string, so the index order is the
	// chronological order.
	docs, err := r.tasks(patientID).OrderBy("timeOfDay", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while fetching treatment tasks for patient %s: %v", patientID, err)
		return nil, errors.Internal("Failed to fetch treatment tasks", err)
	}

	var tasks []*entity.TreatmentTask
	for _, doc := range docs {
		var task entity.TreatmentTask
		if err := doc.DataTo(&task); err != nil {
			continue // skip malformed documents
		}
		tasks = append(tasks, &task)
	}

	return tasks, nil
}

func (r *firestoreTreatmentTaskRepository) Update(ctx context.Context, task *entity.TreatmentTask) error {
	task.UpdatedAt = time.Now()

	_, err := r.tasks(task.PatientID).Doc(task.ID).Set(ctx, task)
	if err != nil {
		return errors.Internal("Failed to update treatment task", err)
	}

	return nil
}
