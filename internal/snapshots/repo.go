package snapshots

import "context"

// Repo defines persistence operations for snapshots.
type Repo interface {
	Create(ctx context.Context, s Snapshot) error
	GetByID(ctx context.Context, id string) (Snapshot, error)
	ListByStudent(ctx context.Context, studentID int64, limit, offset int) ([]Snapshot, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
