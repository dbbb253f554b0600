package students

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores students in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Student
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[int64]Student)}
}

// Create stores s. A zero ID is assigned the next free one.
func (r *MemoryRepo) Create(ctx context.Context, s Student) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		r.nextID++
		s.ID = r.nextID
	} else if s.ID > r.nextID {
		r.nextID = s.ID
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.byID[s.ID] = s
	return s, nil
}

// GetByID returns a student by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Student, error) {
	if err := ctx.Err(); err != nil {
		return Student{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Student{}, ErrNotFound
	}
	return s, nil
}

var _ Repo = (*MemoryRepo)(nil)
