package client

import (
	"context"
	"fmt"
	"net/http"
)

// Login authenticates against the server. On success the session cookie is
// stored in the client's jar and the user payload returned.
func (c *Client) Login(ctx context.Context, email, password, role string) (*User, error) {
	var user User
	err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Me resolves the current session. A 401 means no session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the server-side session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// -- Departments --

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var depts []Department
	if err := c.get(ctx, "/hospitals/departments", &depts); err != nil {
		return nil, err
	}
	return depts, nil
}

func (c *Client) CreateDepartment(ctx context.Context, dept Department) (*Department, error) {
	var out Department
	if err := c.post(ctx, "/hospitals/departments", dept, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, dept Department) (*Department, error) {
	var out Department
	if err := c.put(ctx, "/hospitals/departments/"+dept.ID, dept, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.delete(ctx, "/hospitals/departments/"+id)
}

func (c *Client) AddStaff(ctx context.Context, departmentID string, sa StaffAssignment) (*StaffAssignment, error) {
	var out StaffAssignment
	err := c.post(ctx, fmt.Sprintf("/hospitals/departments/%s/staff", departmentID), sa, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveStaff(ctx context.Context, departmentID, staffID string) error {
	return c.delete(ctx, fmt.Sprintf("/hospitals/departments/%s/staff/%s", departmentID, staffID))
}

// -- Doctors --

func (c *Client) ListDoctors(ctx context.Context) ([]Doctor, error) {
	var docs []Doctor
	if err := c.get(ctx, "/hospitals/doctors", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) CreateDoctor(ctx context.Context, doc Doctor) (*Doctor, error) {
	var out Doctor
	if err := c.post(ctx, "/hospitals/doctors", doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// -- Patient log --

func (c *Client) ListPatientLog(ctx context.Context) ([]PatientLogEntry, error) {
	var entries []PatientLogEntry
	if err := c.get(ctx, "/hospitals/patient-log", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdatePatientStatus applies a status transition and returns the server's
// canonical entry, so callers patch local state instead of refetching.
func (c *Client) UpdatePatientStatus(ctx context.Context, id, status string) (*PatientLogEntry, error) {
	var out PatientLogEntry
	err := c.put(ctx, fmt.Sprintf("/patients/%s/status", id), map[string]string{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// -- Status snapshot --

func (c *Client) GetStatus(ctx context.Context) (*StatusSnapshot, error) {
	var snap StatusSnapshot
	if err := c.get(ctx, "/hospitals/status", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) SaveStatus(ctx context.Context, snap StatusSnapshot) (*StatusSnapshot, error) {
	var out StatusSnapshot
	if err := c.put(ctx, "/hospitals/status", snap, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportCase files a new emergency case. The server attributes it to the
// session paramedic and returns the pending entry.
func (c *Client) ReportCase(ctx context.Context, in ReportCaseInput) (*PatientLogEntry, error) {
	var out PatientLogEntry
	if err := c.post(ctx, "/paramedic/cases", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// -- Hospitals --

func (c *Client) ListHospitals(ctx context.Context) ([]Hospital, error) {
	var hospitals []Hospital
	if err := c.get(ctx, "/hospitals", &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// -- Hospital profile --

func (c *Client) GetProfile(ctx context.Context) (*Account, error) {
	var acc Account
	if err := c.get(ctx, "/hospitals/profile", &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*Account, error) {
	var acc Account
	if err := c.put(ctx, "/hospitals/profile", in, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.put(ctx, "/hospitals/profile/password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, nil)
}

// -- Admin provisioning --

func (c *Client) ListUsers(ctx context.Context) ([]Account, error) {
	var accs []Account
	if err := c.get(ctx, "/admin/users", &accs); err != nil {
		return nil, err
	}
	return accs, nil
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*Account, error) {
	var acc Account
	if err := c.post(ctx, "/admin/users", in, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/"+id)
}
