package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type firestoreStaffRepository struct {
	client *firestore.Client
}

func NewFirestoreStaffRepository(client *firestore.Client) repository.StaffRepository {
	return &firestoreStaffRepository{
		client: client,
	}
}

func (r *firestoreStaffRepository) Create(ctx context.Context, staff *entity.StaffMember) error {
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("staff").Doc(staff.ID).Set(ctx, staff)
	if err != nil {
		return errors.Internal("Failed to create staff record", err)
	}

	return nil
}

func (r *firestoreStaffRepository) GetByID(ctx context.Context, id string) (*entity.StaffMember, error) {
	doc, err := r.client.Collection("staff").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Staff member", nil)
		}
		return nil, errors.Internal("Failed to get staff member", err)
	}

	var staff entity.StaffMember
	if err := doc.DataTo(&staff); err != nil {
		return nil, errors.Internal("Failed to parse staff data", err)
	}

	return &staff, nil
}
