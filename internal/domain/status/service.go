package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, hospitalID uuid.UUID) (*Snapshot, error) {
	return s.repo.Get(ctx, hospitalID)
}

// Save upserts the hospital's snapshot. Each unit must keep occupied within
// total, like department beds.
func (s *Service) Save(ctx context.Context, snap *Snapshot) error {
	if snap.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital id is required")
	}
	if snap.AvailableBeds == nil {
		snap.AvailableBeds = map[string]UnitBeds{}
	}
	for unit, beds := range snap.AvailableBeds {
		if unit == "" {
			return fmt.Errorf("unit name cannot be empty")
		}
		if beds.Total < 0 || beds.Occupied < 0 {
			return fmt.Errorf("bed counts cannot be negative")
		}
		if beds.Occupied > beds.Total {
			return ErrBedsExceeded
		}
	}
	return s.repo.Upsert(ctx, snap)
}
