package session

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(ManagerConfig{
		Secret:     "test-secret",
		TTL:        ttl,
		CookieName: "hospadmin_session",
	})
}

func TestMintParse_Roundtrip(t *testing.T) {
	m := newTestManager(time.Hour)
	u := &User{ID: uuid.New(), Email: "h@example.com", Role: RoleHospital, DisplayName: "مستشفى دمشق"}

	token, err := m.Mint(u)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	got, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.ID != u.ID || got.Email != u.Email || got.Role != u.Role || got.DisplayName != u.DisplayName {
		t.Errorf("roundtrip mismatch: %+v != %+v", got, u)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	token, _ := m.Mint(&User{ID: uuid.New(), Role: RoleHospital})

	other := NewManager(ManagerConfig{Secret: "another-secret", TTL: time.Hour, CookieName: "hospadmin_session"})
	if _, err := other.Parse(token); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestParse_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)
	token, _ := m.Mint(&User{ID: uuid.New(), Role: RoleHospital})

	if _, err := m.Parse(token); err == nil {
		t.Error("expired token must not verify")
	}
}

func TestParse_Garbage(t *testing.T) {
	m := newTestManager(time.Hour)
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Error("malformed token must not verify")
	}
}

func TestCookie_Attributes(t *testing.T) {
	m := newTestManager(2 * time.Hour)
	ck := m.Cookie("tok")

	if ck.Name != "hospadmin_session" {
		t.Errorf("unexpected cookie name: %s", ck.Name)
	}
	if !ck.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Error("session cookie must be SameSite=Lax")
	}
	if ck.MaxAge != int((2 * time.Hour).Seconds()) {
		t.Errorf("MaxAge should match the TTL, got %d", ck.MaxAge)
	}
	if ck.Path != "/" {
		t.Errorf("cookie should cover the whole site, got %s", ck.Path)
	}
}

func TestClearCookie_Expires(t *testing.T) {
	m := newTestManager(time.Hour)
	ck := m.ClearCookie()

	if ck.MaxAge >= 0 {
		t.Error("clear cookie must have a negative MaxAge")
	}
	if ck.Value != "" {
		t.Error("clear cookie must carry no token")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleHospital, RoleParamedic, RoleSuperAdmin} {
		if !ValidRole(role) {
			t.Errorf("%s should be valid", role)
		}
	}
	if ValidRole("") || ValidRole("admin") {
		t.Error("unknown roles should be invalid")
	}
}
