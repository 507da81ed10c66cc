package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

// ErrWrongPassword is returned by ChangePassword when the supplied current
// password does not match the stored hash.
var ErrWrongPassword = errors.New("current password does not match")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies credentials for the login endpoint. The requested
// role must match the stored one: a hospital account cannot log in through
// the paramedic form even with the right password.
func (s *Service) Authenticate(ctx context.Context, email, password, role string) (*session.User, error) {
	acc, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, session.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if acc.Role != role {
		return nil, session.ErrInvalidCredentials
	}
	if !VerifyPassword(acc.PasswordHash, password) {
		return nil, session.ErrInvalidCredentials
	}
	return acc.SessionUser(), nil
}

// CreateUserInput is the super-admin provisioning payload.
type CreateUserInput struct {
	Email               string   `json:"email"`
	Password            string   `json:"password"`
	Role                string   `json:"role"`
	DisplayName         string   `json:"displayName"`
	FormattedAddress    *string  `json:"formattedAddress"`
	Longitude           *float64 `json:"longitude"`
	Latitude            *float64 `json:"latitude"`
	NationalID          *string  `json:"nationalId"`
	AssociatedAmbulance *string  `json:"associatedAmbulance"`
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*Account, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if in.Role != session.RoleHospital && in.Role != session.RoleParamedic {
		return nil, fmt.Errorf("role must be hospital or paramedic")
	}
	if in.DisplayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if in.Role == session.RoleHospital && (in.Longitude == nil || in.Latitude == nil) {
		return nil, fmt.Errorf("hospital accounts require coordinates")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		Email:               in.Email,
		PasswordHash:        hash,
		Role:                in.Role,
		DisplayName:         in.DisplayName,
		FormattedAddress:    in.FormattedAddress,
		Longitude:           in.Longitude,
		Latitude:            in.Latitude,
		NationalID:          in.NationalID,
		AssociatedAmbulance: in.AssociatedAmbulance,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// CreateSuperAdmin provisions the super-admin account. Used by the CLI, not
// exposed over HTTP.
func (s *Service) CreateSuperAdmin(ctx context.Context, email, password, displayName string) (*Account, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if displayName == "" {
		displayName = "Super Admin"
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		Email:        email,
		PasswordHash: hash,
		Role:         session.RoleSuperAdmin,
		DisplayName:  displayName,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	acc, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		// Deleting an already-gone account is not an error.
		return nil
	}
	if err != nil {
		return err
	}
	if acc.Role == session.RoleSuperAdmin {
		return fmt.Errorf("super-admin account cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

// ListHospitals returns hospital accounts for the paramedic cases map.
func (s *Service) ListHospitals(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	return s.repo.ListByRole(ctx, session.RoleHospital, limit, offset)
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfileInput carries the hospital-editable profile fields.
type UpdateProfileInput struct {
	Email            *string  `json:"email"`
	DisplayName      *string  `json:"displayName"`
	FormattedAddress *string  `json:"formattedAddress"`
	Longitude        *float64 `json:"longitude"`
	Latitude         *float64 `json:"latitude"`
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		if *in.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		acc.Email = *in.Email
	}
	if in.DisplayName != nil {
		if *in.DisplayName == "" {
			return nil, fmt.Errorf("display name cannot be empty")
		}
		acc.DisplayName = *in.DisplayName
	}
	if in.FormattedAddress != nil {
		acc.FormattedAddress = in.FormattedAddress
	}
	if in.Longitude != nil {
		acc.Longitude = in.Longitude
	}
	if in.Latitude != nil {
		acc.Latitude = in.Latitude
	}

	if err := s.repo.Update(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("new password must be at least 6 characters")
	}

	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !VerifyPassword(acc.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}
