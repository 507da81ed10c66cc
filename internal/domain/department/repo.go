package department

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for departments and their
// staff assignments.
type Repository interface {
	Create(ctx context.Context, dept *Department) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Department, int, error)

	AddStaff(ctx context.Context, sa *StaffAssignment) error
	UpdateStaff(ctx context.Context, sa *StaffAssignment) error
	RemoveStaff(ctx context.Context, departmentID, staffID uuid.UUID) error
	ListStaff(ctx context.Context, departmentID uuid.UUID) ([]*StaffAssignment, error)
}
