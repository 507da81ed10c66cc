package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

// -- Mock Repository --

type mockRepo struct {
	accounts map[uuid.UUID]*Account
}

func newMockRepo() *mockRepo {
	return &mockRepo{accounts: make(map[uuid.UUID]*Account)}
}

func (m *mockRepo) Create(_ context.Context, acc *Account) error {
	for _, existing := range m.accounts {
		if existing.Email == acc.Email {
			return ErrEmailTaken
		}
	}
	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	acc.CreatedAt = time.Now()
	acc.UpdatedAt = time.Now()
	m.accounts[acc.ID] = acc
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Account, error) {
	acc, ok := m.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return acc, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Account, error) {
	for _, acc := range m.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Update(_ context.Context, acc *Account) error {
	if _, ok := m.accounts[acc.ID]; !ok {
		return ErrNotFound
	}
	m.accounts[acc.ID] = acc
	return nil
}

func (m *mockRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	acc, ok := m.accounts[id]
	if !ok {
		return ErrNotFound
	}
	acc.PasswordHash = hash
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Account, int, error) {
	var result []*Account
	for _, acc := range m.accounts {
		result = append(result, acc)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockRepo) ListByRole(_ context.Context, role string, limit, offset int) ([]*Account, int, error) {
	var result []*Account
	for _, acc := range m.accounts {
		if acc.Role == role {
			result = append(result, acc)
		}
	}
	return result, len(result), nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func createHospital(t *testing.T, svc *Service, email, password string) *Account {
	t.Helper()
	lng, lat := 36.27, 33.51
	acc, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       email,
		Password:    password,
		Role:        session.RoleHospital,
		DisplayName: "مستشفى الاختبار",
		Longitude:   &lng,
		Latitude:    &lat,
	})
	if err != nil {
		t.Fatalf("create hospital: %v", err)
	}
	return acc
}

// -- Tests --

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	user, err := svc.Authenticate(context.Background(), "hospital@example.com", "secret123", session.RoleHospital)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != acc.ID {
		t.Errorf("expected user ID %s, got %s", acc.ID, user.ID)
	}
	if user.DisplayName != "مستشفى الاختبار" {
		t.Errorf("unexpected display name: %s", user.DisplayName)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	createHospital(t, svc, "hospital@example.com", "secret123")

	_, err := svc.Authenticate(context.Background(), "hospital@example.com", "wrong", session.RoleHospital)
	if !errors.Is(err, session.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_RoleMismatch(t *testing.T) {
	svc, _ := newTestService()
	createHospital(t, svc, "hospital@example.com", "secret123")

	// Right credentials through the wrong login form must not succeed.
	_, err := svc.Authenticate(context.Background(), "hospital@example.com", "secret123", session.RoleParamedic)
	if !errors.Is(err, session.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret123", session.RoleHospital)
	if !errors.Is(err, session.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	if acc.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !VerifyPassword(acc.PasswordHash, "secret123") {
		t.Error("stored hash does not verify against the password")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	createHospital(t, svc, "hospital@example.com", "secret123")

	lng, lat := 36.0, 33.0
	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "hospital@example.com",
		Password:    "other456",
		Role:        session.RoleHospital,
		DisplayName: "آخر",
		Longitude:   &lng,
		Latitude:    &lat,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateUser_RejectsSuperAdminRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "admin@example.com",
		Password:    "secret123",
		Role:        session.RoleSuperAdmin,
		DisplayName: "Admin",
	})
	if err == nil {
		t.Error("expected error for super-admin role through CreateUser")
	}
}

func TestCreateUser_HospitalRequiresCoordinates(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "hospital@example.com",
		Password:    "secret123",
		Role:        session.RoleHospital,
		DisplayName: "مستشفى",
	})
	if err == nil {
		t.Error("expected error for hospital without coordinates")
	}
}

func TestCreateUser_ShortPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "medic@example.com",
		Password:    "abc",
		Role:        session.RoleParamedic,
		DisplayName: "مسعف",
	})
	if err == nil {
		t.Error("expected error for short password")
	}
}

func TestDeleteUser_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	if err := svc.DeleteUser(context.Background(), acc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), acc.ID); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
}

func TestDeleteUser_ProtectsSuperAdmin(t *testing.T) {
	svc, _ := newTestService()
	admin, err := svc.CreateSuperAdmin(context.Background(), "admin@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("create super-admin: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), admin.ID); err == nil {
		t.Error("expected error when deleting the super-admin")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	err := svc.ChangePassword(context.Background(), acc.ID, "secret123", "newpass456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "hospital@example.com", "newpass456", session.RoleHospital); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "hospital@example.com", "secret123", session.RoleHospital); err == nil {
		t.Error("old password still accepted")
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	err := svc.ChangePassword(context.Background(), acc.ID, "wrong", "newpass456")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestListHospitals_FiltersByRole(t *testing.T) {
	svc, _ := newTestService()
	createHospital(t, svc, "hospital@example.com", "secret123")
	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "medic@example.com",
		Password:    "secret123",
		Role:        session.RoleParamedic,
		DisplayName: "مسعف",
	})
	if err != nil {
		t.Fatalf("create paramedic: %v", err)
	}

	hospitals, total, err := svc.ListHospitals(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(hospitals) != 1 {
		t.Fatalf("expected 1 hospital, got total=%d len=%d", total, len(hospitals))
	}
	if hospitals[0].Role != session.RoleHospital {
		t.Errorf("unexpected role: %s", hospitals[0].Role)
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	svc, _ := newTestService()
	acc := createHospital(t, svc, "hospital@example.com", "secret123")

	name := "مستشفى المجتهد"
	updated, err := svc.UpdateProfile(context.Background(), acc.ID, UpdateProfileInput{DisplayName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DisplayName != name {
		t.Errorf("display name not updated: %s", updated.DisplayName)
	}
	if updated.Email != "hospital@example.com" {
		t.Errorf("email changed unexpectedly: %s", updated.Email)
	}
}
