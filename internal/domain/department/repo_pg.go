package department

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospadmin/hospadmin/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const deptColumns = `id, hospital_id, name, icon, color, description, is_available,
	beds_total, beds_occupied, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, dept *Department) error {
	if dept.ID == uuid.Nil {
		dept.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO departments (
			id, hospital_id, name, icon, color, description, is_available,
			beds_total, beds_occupied
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		dept.ID, dept.HospitalID, dept.Name, dept.Icon, dept.Color, dept.Description,
		dept.IsAvailable, dept.Beds.Total, dept.Beds.Occupied,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Department, error) {
	dept, err := r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+deptColumns+` FROM departments WHERE hospital_id = $1 AND id = $2`,
		hospitalID, id))
	if err != nil {
		return nil, err
	}
	dept.Staff, err = r.ListStaff(ctx, dept.ID)
	if err != nil {
		return nil, err
	}
	return dept, nil
}

func (r *repoPG) Update(ctx context.Context, dept *Department) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE departments SET
			name = $3, icon = $4, color = $5, description = $6, is_available = $7,
			beds_total = $8, beds_occupied = $9, updated_at = NOW()
		WHERE hospital_id = $1 AND id = $2`,
		dept.HospitalID, dept.ID, dept.Name, dept.Icon, dept.Color, dept.Description,
		dept.IsAvailable, dept.Beds.Total, dept.Beds.Occupied,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM departments WHERE hospital_id = $1 AND id = $2`, hospitalID, id)
	return err
}

func (r *repoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Department, int, error) {
	where := `WHERE hospital_id = $1`
	args := []interface{}{hospitalID}
	limitClause := `LIMIT $2 OFFSET $3`
	if search != "" {
		where += ` AND name ILIKE $2`
		args = append(args, "%"+search+"%")
		limitClause = `LIMIT $3 OFFSET $4`
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM departments `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+deptColumns+` FROM departments `+where+` ORDER BY name `+limitClause,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var depts []*Department
	for rows.Next() {
		dept, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		depts = append(depts, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, dept := range depts {
		dept.Staff, err = r.ListStaff(ctx, dept.ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return depts, total, nil
}

func (r *repoPG) AddStaff(ctx context.Context, sa *StaffAssignment) error {
	if sa.ID == uuid.Nil {
		sa.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO department_staff (id, department_id, doctor_id, role_in_department, on_duty)
		VALUES ($1, $2, $3, $4, $5)`,
		sa.ID, sa.DepartmentID, sa.DoctorID, sa.RoleInDepartment, sa.OnDuty,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateStaff
	}
	return err
}

func (r *repoPG) UpdateStaff(ctx context.Context, sa *StaffAssignment) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE department_staff SET role_in_department = $3, on_duty = $4
		WHERE department_id = $1 AND id = $2`,
		sa.DepartmentID, sa.ID, sa.RoleInDepartment, sa.OnDuty,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) RemoveStaff(ctx context.Context, departmentID, staffID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM department_staff WHERE department_id = $1 AND id = $2`,
		departmentID, staffID)
	return err
}

func (r *repoPG) ListStaff(ctx context.Context, departmentID uuid.UUID) ([]*StaffAssignment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT ds.id, ds.department_id, ds.doctor_id, ds.role_in_department, ds.on_duty,
			d.full_name, d.specialty, ds.created_at
		FROM department_staff ds
		JOIN doctors d ON d.id = ds.doctor_id
		WHERE ds.department_id = $1
		ORDER BY d.full_name`,
		departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*StaffAssignment{}
	for rows.Next() {
		var sa StaffAssignment
		err := rows.Scan(&sa.ID, &sa.DepartmentID, &sa.DoctorID, &sa.RoleInDepartment,
			&sa.OnDuty, &sa.FullName, &sa.Specialty, &sa.CreatedAt)
		if err != nil {
			return nil, err
		}
		staff = append(staff, &sa)
	}
	return staff, rows.Err()
}

func (r *repoPG) scan(row pgx.Row) (*Department, error) {
	var dept Department
	err := row.Scan(&dept.ID, &dept.HospitalID, &dept.Name, &dept.Icon, &dept.Color,
		&dept.Description, &dept.IsAvailable, &dept.Beds.Total, &dept.Beds.Occupied,
		&dept.CreatedAt, &dept.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repoPG) scanRow(rows pgx.Rows) (*Department, error) {
	var dept Department
	err := rows.Scan(&dept.ID, &dept.HospitalID, &dept.Name, &dept.Icon, &dept.Color,
		&dept.Description, &dept.IsAvailable, &dept.Beds.Total, &dept.Beds.Occupied,
		&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
