package doctor

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

func (s *Service) Create(ctx context.Context, doc *Doctor) error {
	if doc.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital id is required")
	}
	if doc.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if doc.NationalCode == "" {
		return fmt.Errorf("national code is required")
	}
	return s.repo.Create(ctx, doc)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, hospitalID, id)
}

func (s *Service) Update(ctx context.Context, doc *Doctor) error {
	if doc.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if doc.NationalCode == "" {
		return fmt.Errorf("national code is required")
	}
	return s.repo.Update(ctx, doc)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.ListByHospital(ctx, hospitalID, search, limit, offset)
}
