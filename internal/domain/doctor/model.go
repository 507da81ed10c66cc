package doctor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound              = errors.New("doctor not found")
	ErrDuplicateNationalCode = errors.New("national code already registered")
)

// Doctor is a member of a hospital's medical roster. Doctors become visible
// on department schedules once assigned there with a role.
type Doctor struct {
	ID           uuid.UUID `json:"id"`
	HospitalID   uuid.UUID `json:"hospitalId"`
	FullName     string    `json:"fullName"`
	Specialty    string    `json:"specialty"`
	NationalCode string    `json:"nationalCode"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
