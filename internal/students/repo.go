package students

import "context"

// Repo defines persistence operations for students.
type Repo interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id int64) (Student, error)
}
