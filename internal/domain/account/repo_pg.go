package account

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

const accountColumns = `id, email, password_hash, role, display_name,
	formatted_address, longitude, latitude, national_id, associated_ambulance,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, acc *Account) error {
	if acc.ID == uuid.Nil {
		acc.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO accounts (
			id, email, password_hash, role, display_name,
			formatted_address, longitude, latitude, national_id, associated_ambulance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		acc.ID, acc.Email, acc.PasswordHash, acc.Role, acc.DisplayName,
		acc.FormattedAddress, acc.Longitude, acc.Latitude, acc.NationalID, acc.AssociatedAmbulance,
	)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE lower(email) = lower($1)`, email))
}

func (r *repoPG) Update(ctx context.Context, acc *Account) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE accounts SET
			email = $2, display_name = $3,
			formatted_address = $4, longitude = $5, latitude = $6,
			national_id = $7, associated_ambulance = $8,
			updated_at = NOW()
		WHERE id = $1`,
		acc.ID, acc.Email, acc.DisplayName,
		acc.FormattedAddress, acc.Longitude, acc.Latitude,
		acc.NationalID, acc.AssociatedAmbulance,
	)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Account, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accs, err := r.collect(rows)
	return accs, total, err
}

func (r *repoPG) ListByRole(ctx context.Context, role string, limit, offset int) ([]*Account, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE role = $1`, role).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE role = $1 ORDER BY display_name LIMIT $2 OFFSET $3`,
		role, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accs, err := r.collect(rows)
	return accs, total, err
}

func (r *repoPG) scan(row pgx.Row) (*Account, error) {
	var acc Account
	err := row.Scan(
		&acc.ID, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.DisplayName,
		&acc.FormattedAddress, &acc.Longitude, &acc.Latitude, &acc.NationalID, &acc.AssociatedAmbulance,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Account, error) {
	var accs []*Account
	for rows.Next() {
		var acc Account
		err := rows.Scan(
			&acc.ID, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.DisplayName,
			&acc.FormattedAddress, &acc.Longitude, &acc.Latitude, &acc.NationalID, &acc.AssociatedAmbulance,
			&acc.CreatedAt, &acc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		accs = append(accs, &acc)
	}
	return accs, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
