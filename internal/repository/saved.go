package repository

import (
	"context"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedRepository struct {
	pool *pgxpool.Pool
}

func NewSavedRepository(pool *pgxpool.Pool) *SavedRepository {
	return &SavedRepository{pool: pool}
}

// Save bookmarks a listing for the user. Saving twice is a no-op.
func (r *SavedRepository) Save(ctx context.Context, userID, plotID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_plots (user_id, plot_id) VALUES ($1, $2)
		ON CONFLICT (user_id, plot_id) DO NOTHING
	`, userID, plotID)
	return err
}

func (r *SavedRepository) Unsave(ctx context.Context, userID, plotID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM saved_plots WHERE user_id = $1 AND plot_id = $2
	`, userID, plotID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SavedRepository) IsSaved(ctx context.Context, userID, plotID string) (bool, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM saved_plots WHERE user_id = $1 AND plot_id = $2
	`, userID, plotID).Scan(&n)
	return n > 0, err
}

// ListByUser returns the user's bookmarks newest first, each with its listing card.
func (r *SavedRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedPlot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.user_id, s.plot_id, s.saved_at,
		       p.id, p.title, p.location, p.state, p.price, p.area, p.plot_type,
		       p.plot_facing, p.road_width, p.image_url, p.seller_name, p.is_verified, p.created_at
		FROM saved_plots s
		JOIN plots p ON p.id = s.plot_id
		WHERE s.user_id = $1
		ORDER BY s.saved_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SavedPlot
	for rows.Next() {
		var sp model.SavedPlot
		if err := rows.Scan(
			&sp.ID, &sp.UserID, &sp.PlotID, &sp.SavedAt,
			&sp.Plot.ID, &sp.Plot.Title, &sp.Plot.Location, &sp.Plot.State, &sp.Plot.Price,
			&sp.Plot.Area, &sp.Plot.PlotType, &sp.Plot.PlotFacing, &sp.Plot.RoadWidth,
			&sp.Plot.ImageURL, &sp.Plot.SellerName, &sp.Plot.IsVerified, &sp.Plot.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// UnsaveByID removes a bookmark by its own id, scoped to the owner.
func (r *SavedRepository) UnsaveByID(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM saved_plots WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
