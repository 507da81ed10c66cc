package status

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("status snapshot not found")
	ErrBedsExceeded = errors.New("occupied beds exceed total beds")
)

// UnitBeds is the capacity pair for a single unit in the snapshot.
type UnitBeds struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
}

// Snapshot is the hospital's live availability board: ER state plus a
// free-form set of bed units. The unit set is editable, so it is stored as
// a JSONB map rather than rows.
type Snapshot struct {
	HospitalID    uuid.UUID           `json:"hospitalId"`
	IsERAvailable bool                `json:"isERAvailable"`
	AvailableBeds map[string]UnitBeds `json:"availableBeds"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
