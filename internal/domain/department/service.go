package department

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

func validateBeds(b Beds) error {
	if b.Total < 0 || b.Occupied < 0 {
		return fmt.Errorf("bed counts cannot be negative")
	}
	if b.Occupied > b.Total {
		return ErrBedsExceeded
	}
	return nil
}

func (s *Service) Create(ctx context.Context, dept *Department) error {
	if dept.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital id is required")
	}
	if dept.Name == "" {
		return fmt.Errorf("department name is required")
	}
	if err := validateBeds(dept.Beds); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return err
	}
	dept.Staff = []*StaffAssignment{}
	return nil
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Department, error) {
	return s.repo.GetByID(ctx, hospitalID, id)
}

func (s *Service) Update(ctx context.Context, dept *Department) error {
	if dept.Name == "" {
		return fmt.Errorf("department name is required")
	}
	if err := validateBeds(dept.Beds); err != nil {
		return err
	}
	return s.repo.Update(ctx, dept)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Department, int, error) {
	return s.repo.ListByHospital(ctx, hospitalID, search, limit, offset)
}

// AddStaff assigns a doctor to the department. The department must belong to
// the calling hospital, the role must be a known one, and a doctor cannot be
// assigned to the same department twice.
func (s *Service) AddStaff(ctx context.Context, hospitalID uuid.UUID, sa *StaffAssignment) error {
	if sa.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor id is required")
	}
	if !ValidRole(sa.RoleInDepartment) {
		return ErrInvalidRole
	}
	if _, err := s.repo.GetByID(ctx, hospitalID, sa.DepartmentID); err != nil {
		return err
	}
	return s.repo.AddStaff(ctx, sa)
}

func (s *Service) UpdateStaff(ctx context.Context, hospitalID uuid.UUID, sa *StaffAssignment) error {
	if !ValidRole(sa.RoleInDepartment) {
		return ErrInvalidRole
	}
	if _, err := s.repo.GetByID(ctx, hospitalID, sa.DepartmentID); err != nil {
		return err
	}
	return s.repo.UpdateStaff(ctx, sa)
}

// RemoveStaff unassigns a staff member. Removing an assignment that is
// already gone succeeds, so a double-click on delete cannot surface an error.
func (s *Service) RemoveStaff(ctx context.Context, hospitalID, departmentID, staffID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, hospitalID, departmentID); err != nil {
		return err
	}
	return s.repo.RemoveStaff(ctx, departmentID, staffID)
}
