package client

import "testing"

func TestStaffWizard_Gating(t *testing.T) {
	w := NewStaffWizard()

	if !w.CanProceed(StepDepartment) {
		t.Error("step 1 must always be reachable")
	}
	if w.CanProceed(StepDoctor) || w.CanProceed(StepRole) {
		t.Error("later steps must be locked until a department is selected")
	}

	w.SelectDepartment("dept-1")
	if !w.CanProceed(StepDoctor) {
		t.Error("step 2 should unlock after department selection")
	}
	if w.CanProceed(StepRole) {
		t.Error("step 3 must stay locked until a doctor is selected")
	}

	w.SelectDoctor("doc-1")
	if !w.CanProceed(StepRole) {
		t.Error("step 3 should unlock after doctor selection")
	}
	if w.Complete() {
		t.Error("wizard is not complete without a role")
	}

	w.SelectRole("رئيس قسم")
	if !w.Complete() {
		t.Error("wizard should be complete with all three selections")
	}
}

func TestStaffWizard_Assignment(t *testing.T) {
	w := NewStaffWizard()
	w.SelectDepartment("dept-1")
	w.SelectDoctor("doc-1")
	w.SelectRole("أخصائي")

	sa := w.Assignment()
	if sa.DepartmentID != "dept-1" || sa.DoctorID != "doc-1" || sa.RoleInDepartment != "أخصائي" {
		t.Errorf("assignment does not reflect the selections: %+v", sa)
	}
}

func TestStaffWizard_Reset(t *testing.T) {
	w := NewStaffWizard()
	w.SelectDepartment("dept-1")
	w.SelectDoctor("doc-1")
	w.SelectRole("مناوب")

	w.Reset()
	if w.Complete() {
		t.Error("reset should clear all selections")
	}
	if w.CanProceed(StepDoctor) {
		t.Error("reset should re-lock the later steps")
	}
}

func TestStaffWizard_UnknownStep(t *testing.T) {
	w := NewStaffWizard()
	if w.CanProceed(0) || w.CanProceed(4) {
		t.Error("out-of-range steps are never reachable")
	}
}
