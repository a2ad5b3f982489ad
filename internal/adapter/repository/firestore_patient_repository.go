package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestorePatientRepository struct {
	client *firestore.Client
}

func NewFirestorePatientRepository(client *firestore.Client) repository.PatientRepository {
	return &firestorePatientRepository{
		client: client,
	}
}

// Create stores the patient under their auth UID; the ID is always assigned
// by the identity provider before this is called.
func (r *firestorePatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.client.Collection("patients").Doc(patient.ID).Set(ctx, patient)
	if err != nil {
		return errors.Internal("Failed to create patient record", err)
	}

	return nil
}

func (r *firestorePatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	doc, err := r.client.Collection("patients").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Patient", nil)
		}
		return nil, errors.Internal("Failed to get patient", err)
	}

	var patient entity.Patient
	if err := doc.DataTo(&patient); err != nil {
		return nil, errors.Internal("Failed to parse patient data", err)
	}

	return &patient, nil
}

func (r *firestorePatientRepository) GetByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	query := r.client.Collection("patients").Where("email", "==", email).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Patient", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query patient by email", err)
	}

	var patient entity.Patient
	if err := doc.DataTo(&patient); err != nil {
		return nil, errors.Internal("Failed to parse patient data", err)
	}

	return &patient, nil
}

func (r *firestorePatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patient.UpdatedAt = time.Now()

	_, err := r.client.Collection("patients").Doc(patient.ID).Set(ctx, patient)
	if err != nil {
		return errors.Internal("Failed to update patient record", err)
	}

	return nil
}
