package patientlog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for patient log entries.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Entry, error)
	UpdateStatus(ctx context.Context, hospitalID, id uuid.UUID, from, to string) error
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Entry, int, error)
	ListByCreator(ctx context.Context, createdByID uuid.UUID, limit, offset int) ([]*Entry, int, error)
}
