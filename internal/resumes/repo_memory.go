package resumes

import (
	"context"
	"sync"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	byStudent map[int64]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byStudent: make(map[int64]Record)}
}

// GetByStudentID returns the record for a student.
func (r *MemoryRepo) GetByStudentID(ctx context.Context, studentID int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byStudent[studentID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Upsert replaces the record for rec.StudentID.
func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byStudent[rec.StudentID] = rec
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
