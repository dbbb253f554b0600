package snapshots

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores snapshots in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	byID      map[string]Snapshot
	byStudent map[int64][]Snapshot
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:      make(map[string]Snapshot),
		byStudent: make(map[int64][]Snapshot),
	}
}

// Create stores the snapshot.
func (r *MemoryRepo) Create(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	r.byStudent[s.StudentID] = append(r.byStudent[s.StudentID], s)
	return nil
}

// GetByID returns a snapshot by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return s, nil
}

// ListByStudent returns snapshots of a student, newest first.
func (r *MemoryRepo) ListByStudent(ctx context.Context, studentID int64, limit, offset int) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	out := make([]Snapshot, len(r.byStudent[studentID]))
	copy(out, r.byStudent[studentID])
	r.mu.RUnlock()

	if offset >= len(out) {
		return []Snapshot{}, nil
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	end := len(out)
	if offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
