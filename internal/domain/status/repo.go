package status

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for status snapshots.
type Repository interface {
	Get(ctx context.Context, hospitalID uuid.UUID) (*Snapshot, error)
	Upsert(ctx context.Context, snap *Snapshot) error
}
