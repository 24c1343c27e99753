package postings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Skills are stored as a JSONB array.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new posting.
func (r *PGRepo) Create(ctx context.Context, posting Posting) error {
	const query = `
INSERT INTO postings (
    id,
    title,
    company,
    skills,
    experience_level,
    location,
    salary_range,
    summary,
    raw_text,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	skills, err := json.Marshal(posting.Skills)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		posting.ID,
		posting.Title,
		posting.Company,
		skills,
		posting.ExperienceLevel,
		posting.Location,
		posting.SalaryRange,
		posting.Summary,
		posting.RawText,
		posting.CreatedAt,
	)
	return err
}

// GetByID fetches a posting by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	const query = `
SELECT id, title, company, skills, experience_level, location, salary_range, summary, raw_text, created_at
FROM postings
WHERE id = $1
LIMIT 1`

	var posting Posting
	var skills []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&posting.ID,
		&posting.Title,
		&posting.Company,
		&skills,
		&posting.ExperienceLevel,
		&posting.Location,
		&posting.SalaryRange,
		&posting.Summary,
		&posting.RawText,
		&posting.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Posting{}, ErrNotFound
		}
		return Posting{}, err
	}
	if err := json.Unmarshal(skills, &posting.Skills); err != nil {
		return Posting{}, err
	}
	return posting, nil
}

// List returns postings newest-first with clamped limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Posting, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, title, company, skills, experience_level, location, salary_range, summary, raw_text, created_at
FROM postings
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Posting
	for rows.Next() {
		var posting Posting
		var skills []byte
		if err := rows.Scan(
			&posting.ID,
			&posting.Title,
			&posting.Company,
			&skills,
			&posting.ExperienceLevel,
			&posting.Location,
			&posting.SalaryRange,
			&posting.Summary,
			&posting.RawText,
			&posting.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &posting.Skills); err != nil {
			return nil, err
		}
		out = append(out, posting)
	}
	return out, rows.Err()
}

// Delete removes a posting by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM postings WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
