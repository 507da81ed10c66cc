package doctor

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

const doctorColumns = `id, hospital_id, full_name, specialty, national_code, phone, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, doc *Doctor) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO doctors (id, hospital_id, full_name, specialty, national_code, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.ID, doc.HospitalID, doc.FullName, doc.Specialty, doc.NationalCode, doc.Phone,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateNationalCode
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Doctor, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE hospital_id = $1 AND id = $2`,
		hospitalID, id))
}

func (r *repoPG) Update(ctx context.Context, doc *Doctor) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE doctors SET
			full_name = $3, specialty = $4, national_code = $5, phone = $6, updated_at = NOW()
		WHERE hospital_id = $1 AND id = $2`,
		doc.HospitalID, doc.ID, doc.FullName, doc.Specialty, doc.NationalCode, doc.Phone,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateNationalCode
	}
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
		`DELETE FROM doctors WHERE hospital_id = $1 AND id = $2`, hospitalID, id)
	return err
}

func (r *repoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Doctor, int, error) {
	where := `WHERE hospital_id = $1`
	args := []interface{}{hospitalID}
	if search != "" {
		where += ` AND (full_name ILIKE $2 OR specialty ILIKE $2 OR national_code ILIKE $2)`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM doctors `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	p := pgParams(len(args))
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+doctorColumns+` FROM doctors `+where+` ORDER BY full_name `+p,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var docs []*Doctor
	for rows.Next() {
		var doc Doctor
		err := rows.Scan(&doc.ID, &doc.HospitalID, &doc.FullName, &doc.Specialty,
			&doc.NationalCode, &doc.Phone, &doc.CreatedAt, &doc.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, &doc)
	}
	return docs, total, rows.Err()
}

func (r *repoPG) scan(row pgx.Row) (*Doctor, error) {
	var doc Doctor
	err := row.Scan(&doc.ID, &doc.HospitalID, &doc.FullName, &doc.Specialty,
		&doc.NationalCode, &doc.Phone, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func pgParams(n int) string {
	switch n {
	case 1:
		return `LIMIT $2 OFFSET $3`
	default:
		return `LIMIT $3 OFFSET $4`
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
