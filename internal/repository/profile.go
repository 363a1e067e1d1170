package repository

import (
	"context"
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, fullName, email, phone, passwordHash string) (*model.Profile, error) {
	p := &model.Profile{FullName: fullName, Email: email, Phone: phone, PasswordHash: passwordHash}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (full_name, email, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, fullName, email, phone, passwordHash).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, password_hash, is_banned, created_at, last_login_at
		FROM profiles WHERE id = $1
	`, id))
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone, password_hash, is_banned, created_at, last_login_at
		FROM profiles WHERE email = $1
	`, email))
}

func (r *ProfileRepository) UpdateLoginTime(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE profiles SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

// UpdateProfile rewrites the user-editable fields.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, id, fullName, phone string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET full_name = $2, phone = $3 WHERE id = $1
	`, id, fullName, phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET password_hash = $2 WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE profiles SET is_banned = $2 WHERE id = $1`, id, banned)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// HasRole reports whether the user carries the given role (e.g. "admin").
func (r *ProfileRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_roles WHERE user_id = $1 AND role = $2
	`, userID, role).Scan(&n)
	return n > 0, err
}

func (r *ProfileRepository) GrantRole(ctx context.Context, userID, role string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING
	`, userID, role)
	return err
}

func (r *ProfileRepository) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

func (r *ProfileRepository) scanOne(row pgx.Row) (*model.Profile, error) {
	p := &model.Profile{}
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.PasswordHash, &p.IsBanned, &p.CreatedAt, &p.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
