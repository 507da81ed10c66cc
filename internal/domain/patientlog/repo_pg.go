package patientlog

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

const entryColumns = `pc.id, pc.hospital_id, pc.first_name, pc.last_name, pc.age,
	pc.current_condition, pc.status, pc.latitude, pc.longitude,
	pc.created_by_id, COALESCE(a.display_name, ''), pc.created_at, pc.updated_at`

const entryJoin = `FROM patient_cases pc LEFT JOIN accounts a ON a.id = pc.created_by_id`

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient_cases (
			id, hospital_id, first_name, last_name, age,
			current_condition, status, latitude, longitude, created_by_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.HospitalID, e.FirstName, e.LastName, e.Age,
		e.CurrentCondition, e.Status, e.Latitude, e.Longitude, e.CreatedByID,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Entry, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+entryColumns+` `+entryJoin+` WHERE pc.hospital_id = $1 AND pc.id = $2`,
		hospitalID, id))
}

// UpdateStatus applies from -> to with the row locked, so two concurrent
// transitions cannot both win: the second one sees the moved status and
// fails with ErrInvalidTransition instead of overwriting the first.
func (r *repoPG) UpdateStatus(ctx context.Context, hospitalID, id uuid.UUID, from, to string) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		var current string
		err := r.conn(ctx).QueryRow(ctx,
			`SELECT status FROM patient_cases WHERE hospital_id = $1 AND id = $2 FOR UPDATE`,
			hospitalID, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if current != from {
			return ErrInvalidTransition
		}

		_, err = r.conn(ctx).Exec(ctx, `
			UPDATE patient_cases SET status = $3, updated_at = NOW()
			WHERE hospital_id = $1 AND id = $2`,
			hospitalID, id, to)
		return err
	})
}

func (r *repoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patient_cases WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+entryColumns+` `+entryJoin+`
		WHERE pc.hospital_id = $1
		ORDER BY pc.created_at DESC
		LIMIT $2 OFFSET $3`,
		hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries, err := r.collect(rows)
	return entries, total, err
}

func (r *repoPG) ListByCreator(ctx context.Context, createdByID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patient_cases WHERE created_by_id = $1`, createdByID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+entryColumns+` `+entryJoin+`
		WHERE pc.created_by_id = $1
		ORDER BY pc.created_at DESC
		LIMIT $2 OFFSET $3`,
		createdByID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries, err := r.collect(rows)
	return entries, total, err
}

func (r *repoPG) scan(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.HospitalID, &e.FirstName, &e.LastName, &e.Age,
		&e.CurrentCondition, &e.Status, &e.Latitude, &e.Longitude,
		&e.CreatedByID, &e.CreatedBy.FullName, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(&e.ID, &e.HospitalID, &e.FirstName, &e.LastName, &e.Age,
			&e.CurrentCondition, &e.Status, &e.Latitude, &e.Longitude,
			&e.CreatedByID, &e.CreatedBy.FullName, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
