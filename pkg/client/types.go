package client

import "time"

// User is the authenticated identity returned by login and whoami.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

// Account roles.
const (
	RoleHospital   = "hospital"
	RoleParamedic  = "paramedic"
	RoleSuperAdmin = "super-admin"
)

// Beds is a department's capacity pair.
type Beds struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
}

// Department is a hospital unit with bed capacity and staff roster.
type Department struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Icon        string            `json:"icon"`
	Color       string            `json:"color"`
	Description string            `json:"description"`
	IsAvailable bool              `json:"isAvailable"`
	Beds        Beds              `json:"beds"`
	Staff       []StaffAssignment `json:"staff"`
}

// StaffAssignment links a doctor to a department.
type StaffAssignment struct {
	ID               string `json:"id"`
	DepartmentID     string `json:"departmentId"`
	DoctorID         string `json:"doctorId"`
	RoleInDepartment string `json:"roleInDepartment"`
	OnDuty           bool   `json:"onDuty"`
	FullName         string `json:"fullName"`
	Specialty        string `json:"specialty"`
}

// Doctor is a hospital roster member.
type Doctor struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Specialty    string `json:"specialty"`
	NationalCode string `json:"nationalCode"`
	Phone        string `json:"phone"`
}

// PatientLogEntry is an incoming emergency case.
type PatientLogEntry struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	CurrentCondition string    `json:"currentCondition"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        struct {
		FullName string `json:"fullName"`
	} `json:"createdBy"`
}

// Patient log statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusTreated   = "treated"
	StatusRejected  = "rejected"
)

// UnitBeds is a per-unit capacity pair in a status snapshot.
type UnitBeds struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
}

// StatusSnapshot is the hospital's availability board.
type StatusSnapshot struct {
	IsERAvailable bool                `json:"isERAvailable"`
	AvailableBeds map[string]UnitBeds `json:"availableBeds"`
}

// Account is the admin-facing view of a provisioned login. Hospitals carry
// location fields; paramedics carry national ID and ambulance number.
type Account struct {
	ID                  string   `json:"id"`
	Email               string   `json:"email"`
	Role                string   `json:"role"`
	DisplayName         string   `json:"displayName"`
	FormattedAddress    *string  `json:"formattedAddress,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	NationalID          *string  `json:"nationalId,omitempty"`
	AssociatedAmbulance *string  `json:"associatedAmbulance,omitempty"`
}

// CreateUserInput provisions a new hospital or paramedic account.
type CreateUserInput struct {
	Email               string   `json:"email"`
	Password            string   `json:"password"`
	Role                string   `json:"role"`
	DisplayName         string   `json:"displayName"`
	FormattedAddress    *string  `json:"formattedAddress,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	NationalID          *string  `json:"nationalId,omitempty"`
	AssociatedAmbulance *string  `json:"associatedAmbulance,omitempty"`
}

// UpdateProfileInput carries partial profile changes. Nil fields are left
// untouched by the server.
type UpdateProfileInput struct {
	Email            *string  `json:"email,omitempty"`
	DisplayName      *string  `json:"displayName,omitempty"`
	FormattedAddress *string  `json:"formattedAddress,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
}

// ReportCaseInput files a new emergency case against a hospital.
type ReportCaseInput struct {
	Name       string   `json:"name"`
	Age        *int     `json:"age,omitempty"`
	Condition  string   `json:"condition"`
	HospitalID string   `json:"hospitalId"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// Hospital is the paramedic-facing hospital listing.
type Hospital struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"displayName"`
	FormattedAddress *string  `json:"formattedAddress,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
}

// ValidTransitions returns the statuses reachable from the given one. It
// mirrors the server's rule so the UI renders exactly the legal action set:
// pending exposes confirm and reject, confirmed exposes treat, terminals
// expose nothing.
func ValidTransitions(status string) []string {
	switch status {
	case StatusPending:
		return []string{StatusConfirmed, StatusRejected}
	case StatusConfirmed:
		return []string{StatusTreated}
	}
	return nil
}

// CanTransition reports whether from → to is a legal status change.
func CanTransition(from, to string) bool {
	for _, s := range ValidTransitions(from) {
		if s == to {
			return true
		}
	}
	return false
}
