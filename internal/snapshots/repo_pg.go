package snapshots

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a snapshot.
func (r *PGRepo) Create(ctx context.Context, s Snapshot) error {
	const query = `
INSERT INTO resume_snapshots (
    id, student_id, template, layout, storage_key, file_name, size_bytes, degraded, created_by, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.StudentID,
		s.Template,
		s.Layout,
		s.StorageKey,
		s.FileName,
		s.SizeBytes,
		s.Degraded,
		s.CreatedBy,
		s.CreatedAt,
	)
	return err
}

// GetByID returns a snapshot by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Snapshot, error) {
	const query = `
SELECT id, student_id, template, layout, storage_key, file_name, size_bytes, degraded, created_by, created_at
FROM resume_snapshots
WHERE id = $1`
	s, err := scanSnapshot(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	return s, nil
}

// ListByStudent lists snapshots ordered newest-first.
func (r *PGRepo) ListByStudent(ctx context.Context, studentID int64, limit, offset int) ([]Snapshot, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
SELECT id, student_id, template, layout, storage_key, file_name, size_bytes, degraded, created_by, created_at
FROM resume_snapshots
WHERE student_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, studentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Snapshot{}
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var s Snapshot
	err := row.Scan(
		&s.ID,
		&s.StudentID,
		&s.Template,
		&s.Layout,
		&s.StorageKey,
		&s.FileName,
		&s.SizeBytes,
		&s.Degraded,
		&s.CreatedBy,
		&s.CreatedAt,
	)
	return s, err
}

var _ Repo = (*PGRepo)(nil)
