package session

import (
	"context"

	"github.com/google/uuid"
)

// Roles accepted by the login endpoint. A session carries exactly one.
const (
	RoleHospital   = "hospital"
	RoleParamedic  = "paramedic"
	RoleSuperAdmin = "super-admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleHospital, RoleParamedic, RoleSuperAdmin:
		return true
	}
	return false
}

// User is the authenticated identity resolved from the session cookie.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
}

type contextKey string

const userKey contextKey = "session_user"

// WithUser returns a context carrying the resolved session user.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// FromContext returns the session user, or nil when the request is
// unauthenticated.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userKey).(*User)
	return u
}
