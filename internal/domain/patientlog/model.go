package patientlog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("patient log entry not found")
	ErrUnknownStatus     = errors.New("unknown patient status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Entry statuses. An entry starts pending and moves through the transitions
// in ValidTransitions; treated and rejected are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusTreated   = "treated"
	StatusRejected  = "rejected"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusTreated},
	StatusTreated:   {},
	StatusRejected:  {},
}

// KnownStatus reports whether status is one of the four entry statuses.
func KnownStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// ValidTransitions returns the statuses reachable from the given one. The
// dashboard derives its action buttons from this, and the status endpoint
// enforces the same set.
func ValidTransitions(status string) []string {
	next, ok := transitions[status]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreatedBy identifies the paramedic who reported the case, denormalized
// for rendering.
type CreatedBy struct {
	FullName string `json:"fullName"`
}

// Entry is an incoming emergency case awaiting hospital confirmation.
type Entry struct {
	ID               uuid.UUID  `json:"id"`
	HospitalID       uuid.UUID  `json:"hospitalId"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Age              *int       `json:"age,omitempty"`
	CurrentCondition string     `json:"currentCondition"`
	Status           string     `json:"status"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	CreatedByID      *uuid.UUID `json:"createdById"` // nil once the reporting account is deleted
	CreatedBy        CreatedBy  `json:"createdBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
