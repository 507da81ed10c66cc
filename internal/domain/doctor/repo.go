package doctor

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for doctors.
type Repository interface {
	Create(ctx context.Context, doc *Doctor) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Doctor, error)
	Update(ctx context.Context, doc *Doctor) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Doctor, int, error)
}
