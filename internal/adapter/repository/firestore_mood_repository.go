package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestoreMoodRepository struct {
	client *firestore.Client
}

func NewFirestoreMoodRepository(client *firestore.Client) repository.MoodRepository {
	return &firestoreMoodRepository{
		client: client,
	}
}

func (r *firestoreMoodRepository) moods(patientID string) *firestore.CollectionRef {
	return r.client.Collection("patients").Doc(patientID).Collection("moods")
}

func (r *firestoreMoodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.moods(entry.PatientID).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to store mood entry", err)
	}

	return nil
}

func (r *firestoreMoodRepository) ListByPatient(ctx context.Context, patientID string, limit int) ([]*entity.MoodEntry, error) {
	query := r.moods(patientID).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var entries []*entity.MoodEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating mood entries for patient %s: %v", patientID, err)
			return nil, errors.Internal("Failed to iterate mood entries", err)
		}

		var entry entity.MoodEntry
		if err := doc.DataTo(&entry); err != nil {
			log.Printf("Error parsing mood entry for patient %s: %v", patientID, err)
			continue // skip malformed documents
		}

		entries = append(entries, &entry)
	}

	return entries, nil
}
