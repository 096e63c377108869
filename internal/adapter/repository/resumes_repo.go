package repository

import (
	"context"
	"errors"

	"resumely/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) Create(ctx context.Context, res *domain.Resume) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, name, data, template, is_default, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		res.ID, res.UserID, res.Name, res.Data, res.Template, res.IsDefault, res.CreatedAt, res.UpdatedAt)
	return err
}

// ListByUser returns list-view summaries, most recently updated first.
func (r *ResumesRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ResumeSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, template, is_default, created_at, updated_at
		FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ResumeSummary{}
	for rows.Next() {
		var s domain.ResumeSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Template, &s.IsDefault, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Resume, error) {
	res := &domain.Resume{}
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, name, data, template, is_default, created_at, updated_at
		FROM resumes WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&res.ID, &res.UserID, &res.Name, &res.Data, &res.Template, &res.IsDefault, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ResumesRepo) Update(ctx context.Context, res *domain.Resume) error {
	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET name = $3, data = $4, template = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`,
		res.ID, res.UserID, res.Name, res.Data, res.Template, res.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResumesRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDefault marks one resume as the user's default and clears the flag on
// every other resume in the same statement. The target must belong to the
// user or nothing changes.
func (r *ResumesRepo) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM resumes WHERE id = $1 AND user_id = $2)`,
		id, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	_, err = r.pool.Exec(ctx, `UPDATE resumes SET is_default = (id = $1) WHERE user_id = $2`, id, userID)
	return err
}
