package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompareRepository persists each user's ordered compare set as a single
// serialized row, the durable-storage counterpart of the browse page's
// compare bar. Corruption handling lives in the domain type, not here.
type CompareRepository struct {
	pool *pgxpool.Pool
}

func NewCompareRepository(pool *pgxpool.Pool) *CompareRepository {
	return &CompareRepository{pool: pool}
}

// Load returns the stored serialized set, or nil when none exists yet.
func (r *CompareRepository) Load(ctx context.Context, userID string) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `
		SELECT ids FROM compared_plots WHERE user_id = $1
	`, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Store writes the full ordered set, replacing any previous value.
func (r *CompareRepository) Store(ctx context.Context, userID string, data []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO compared_plots (user_id, ids, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET ids = EXCLUDED.ids, updated_at = NOW()
	`, userID, data)
	return err
}
