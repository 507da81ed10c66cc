package account

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Account is a login-capable identity: a hospital, a paramedic, or the
// super-admin. Hospitals carry location fields so paramedics can see them on
// the cases map; paramedics carry their national ID and ambulance number.
type Account struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	Role                string    `json:"role"`
	DisplayName         string    `json:"displayName"`
	FormattedAddress    *string   `json:"formattedAddress,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	Latitude            *float64  `json:"latitude,omitempty"`
	NationalID          *string   `json:"nationalId,omitempty"`
	AssociatedAmbulance *string   `json:"associatedAmbulance,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SessionUser projects the account into the identity carried by the session
// cookie.
func (a *Account) SessionUser() *session.User {
	return &session.User{
		ID:          a.ID,
		Email:       a.Email,
		Role:        a.Role,
		DisplayName: a.DisplayName,
	}
}
