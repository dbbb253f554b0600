package snapshots

import "time"

// Snapshot is an archived render of a student's resume.
type Snapshot struct {
	ID         string
	StudentID  int64
	Template   string
	Layout     string
	StorageKey string
	FileName   string
	SizeBytes  int64
	Degraded   bool
	CreatedBy  string
	CreatedAt  time.Time
}
