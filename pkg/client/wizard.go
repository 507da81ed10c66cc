package client

// Wizard steps for the staff-assignment flow.
const (
	StepDepartment = 1
	StepDoctor     = 2
	StepRole       = 3
)

// StaffWizard models the linear department → doctor → role selection flow.
// Step N+1 is reachable only once everything through step N is selected.
// Progress is in-memory only; abandoning the flow loses all selections.
type StaffWizard struct {
	DepartmentID string
	DoctorID     string
	Role         string
}

func NewStaffWizard() *StaffWizard {
	return &StaffWizard{}
}

func (w *StaffWizard) SelectDepartment(id string) { w.DepartmentID = id }
func (w *StaffWizard) SelectDoctor(id string)     { w.DoctorID = id }
func (w *StaffWizard) SelectRole(role string)     { w.Role = role }

// CanProceed reports whether the given step is reachable from the current
// selections. Step 1 is always reachable.
func (w *StaffWizard) CanProceed(step int) bool {
	switch step {
	case StepDepartment:
		return true
	case StepDoctor:
		return w.DepartmentID != ""
	case StepRole:
		return w.DepartmentID != "" && w.DoctorID != ""
	}
	return false
}

// Complete reports whether all three selections are present.
func (w *StaffWizard) Complete() bool {
	return w.DepartmentID != "" && w.DoctorID != "" && w.Role != ""
}

// Assignment builds the staff assignment from the selections. Call only when
// Complete.
func (w *StaffWizard) Assignment() StaffAssignment {
	return StaffAssignment{
		DepartmentID:     w.DepartmentID,
		DoctorID:         w.DoctorID,
		RoleInDepartment: w.Role,
	}
}

// Reset clears all selections.
func (w *StaffWizard) Reset() {
	w.DepartmentID = ""
	w.DoctorID = ""
	w.Role = ""
}
