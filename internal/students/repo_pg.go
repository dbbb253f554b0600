package students

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a student and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, s Student) (Student, error) {
	const query = `
INSERT INTO students (name, email, branch)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	if err := r.DB.QueryRowContext(ctx, query, s.Name, s.Email, s.Branch).Scan(&s.ID, &s.CreatedAt); err != nil {
		return Student{}, err
	}
	return s, nil
}

// GetByID returns a student by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Student, error) {
	const query = `
SELECT id, name, email, branch, created_at
FROM students
WHERE id = $1`
	var s Student
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.Branch, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Student{}, ErrNotFound
		}
		return Student{}, err
	}
	return s, nil
}

var _ Repo = (*PGRepo)(nil)
