package department

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("department not found")
	ErrDuplicateStaff = errors.New("doctor already assigned to department")
	ErrBedsExceeded   = errors.New("occupied beds exceed total beds")
	ErrInvalidRole    = errors.New("invalid department role")
)

// Roles a staff assignment can carry inside a department. The dashboard
// renders these verbatim, so they are stored as the Arabic strings.
const (
	RoleHead       = "رئيس قسم"
	RoleOnCallWard = "مناوب"
	RoleOnDemand   = "تحت الطلب"
	RoleSpecialist = "أخصائي"
)

// ValidRole reports whether role is one of the known department roles.
func ValidRole(role string) bool {
	switch role {
	case RoleHead, RoleOnCallWard, RoleOnDemand, RoleSpecialist:
		return true
	}
	return false
}

// Beds is the capacity pair shown on the department card. Occupied never
// exceeds Total; the service rejects writes that would break that.
type Beds struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
}

// Department is a hospital unit with bed capacity and an assigned staff
// roster.
type Department struct {
	ID          uuid.UUID          `json:"id"`
	HospitalID  uuid.UUID          `json:"hospitalId"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Color       string             `json:"color"`
	Description string             `json:"description"`
	IsAvailable bool               `json:"isAvailable"`
	Beds        Beds               `json:"beds"`
	Staff       []*StaffAssignment `json:"staff"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// StaffAssignment links a doctor to a department with a role and duty flag.
// Doctor fields are denormalized from the roster for rendering.
type StaffAssignment struct {
	ID               uuid.UUID `json:"id"`
	DepartmentID     uuid.UUID `json:"departmentId"`
	DoctorID         uuid.UUID `json:"doctorId"`
	RoleInDepartment string    `json:"roleInDepartment"`
	OnDuty           bool      `json:"onDuty"`
	FullName         string    `json:"fullName"`
	Specialty        string    `json:"specialty"`
	CreatedAt        time.Time `json:"createdAt"`
}
