package resumes

import "context"

// Repo defines persistence operations for resume records.
type Repo interface {
	GetByStudentID(ctx context.Context, studentID int64) (Record, error)
	Upsert(ctx context.Context, rec Record) error
}
