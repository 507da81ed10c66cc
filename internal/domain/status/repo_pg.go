package status

import (
	"context"
	"encoding/json"
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

func (r *repoPG) Get(ctx context.Context, hospitalID uuid.UUID) (*Snapshot, error) {
	var (
		snap Snapshot
		beds []byte
	)
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT hospital_id, is_er_available, available_beds, updated_at
		FROM hospital_status WHERE hospital_id = $1`,
		hospitalID,
	).Scan(&snap.HospitalID, &snap.IsERAvailable, &beds, &snap.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(beds, &snap.AvailableBeds); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repoPG) Upsert(ctx context.Context, snap *Snapshot) error {
	beds, err := json.Marshal(snap.AvailableBeds)
	if err != nil {
		return err
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO hospital_status (hospital_id, is_er_available, available_beds, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (hospital_id) DO UPDATE SET
			is_er_available = EXCLUDED.is_er_available,
			available_beds = EXCLUDED.available_beds,
			updated_at = NOW()`,
		snap.HospitalID, snap.IsERAvailable, beds,
	)
	return err
}
