package patientlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ReportCaseInput is the paramedic case submission payload.
type ReportCaseInput struct {
	Name       string    `json:"name"`
	Age        *int      `json:"age"`
	Condition  string    `json:"condition"`
	HospitalID uuid.UUID `json:"hospitalId"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
}

// ReportCase files a new pending case against the target hospital. The
// patient name is split into first/last on the first space.
func (s *Service) ReportCase(ctx context.Context, paramedicID uuid.UUID, in ReportCaseInput) (*Entry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if in.Condition == "" {
		return nil, fmt.Errorf("condition is required")
	}
	if in.HospitalID == uuid.Nil {
		return nil, fmt.Errorf("hospital id is required")
	}

	first, last := splitName(name)
	e := &Entry{
		HospitalID:       in.HospitalID,
		FirstName:        first,
		LastName:         last,
		Age:              in.Age,
		CurrentCondition: in.Condition,
		Status:           StatusPending,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		CreatedByID:      &paramedicID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func splitName(name string) (first, last string) {
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}
	return first, strings.TrimSpace(last)
}

// ListForHospital returns the hospital's incoming cases, newest first.
func (s *Service) ListForHospital(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	return s.repo.ListByHospital(ctx, hospitalID, limit, offset)
}

// ListForParamedic returns the cases the paramedic reported, newest first.
func (s *Service) ListForParamedic(ctx context.Context, paramedicID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	return s.repo.ListByCreator(ctx, paramedicID, limit, offset)
}

// UpdateStatus applies a status transition to an entry. The target status
// must be a known one and reachable from the entry's current status. The
// write is guarded on the status we read, so a concurrent transition cannot
// be overwritten; the loser gets ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, hospitalID, id uuid.UUID, status string) (*Entry, error) {
	if !KnownStatus(status) {
		return nil, ErrUnknownStatus
	}

	e, err := s.repo.GetByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(e.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, hospitalID, id, e.Status, status); err != nil {
		return nil, err
	}
	e.Status = status
	return e, nil
}
