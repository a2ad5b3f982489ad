package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestoreHelpRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreHelpRequestRepository(client *firestore.Client) repository.HelpRequestRepository {
	return &firestoreHelpRequestRepository{
		client: client,
	}
}

func (r *firestoreHelpRequestRepository) Create(ctx context.Context, request *entity.HelpRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.client.Collection("help_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create help request", err)
	}

	return nil
}

func (r *firestoreHelpRequestRepository) ListByPatient(ctx context.Context, patientID string, limit int) ([]*entity.HelpRequest, error) {
	query := r.client.Collection("help_requests").
		Where("patientId", "==", patientID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while fetching help requests for patient %s: %v", patientID, err)
		return nil, errors.Internal("Failed to fetch help requests", err)
	}

	var requests []*entity.HelpRequest
	for _, doc := range docs {
		var request entity.HelpRequest
		if err := doc.DataTo(&request); err != nil {
			continue // skip malformed documents
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
