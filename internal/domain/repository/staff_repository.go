package repository

import (
	"context"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.StaffMember) error
	GetByID(ctx context.Context, id string) (*entity.StaffMember, error)
}
