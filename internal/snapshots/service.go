package snapshots

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"resume-portal/internal/resumes"
	"resume-portal/internal/shared/metrics"
	"resume-portal/internal/shared/storage/object"
	"resume-portal/internal/shared/telemetry"
)

const contentTypePDF = "application/pdf"

// Renderer produces the PDF that gets archived.
type Renderer interface {
	RenderPDF(ctx context.Context, studentID int64, template, layout string) (resumes.Document, error)
}

// Service archives rendered resumes in the object store.
type Service struct {
	Repo     Repo
	Renderer Renderer
	Store    object.Store
	Now      func() time.Time
}

// Create renders the resume of studentID and stores the bytes and a row.
func (s *Service) Create(ctx context.Context, studentID int64, template, layout, createdBy string) (Snapshot, error) {
	if studentID <= 0 {
		return Snapshot{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Renderer == nil || s.Store == nil {
		return Snapshot{}, errors.New("missing dependencies")
	}

	doc, err := s.Renderer.RenderPDF(ctx, studentID, template, layout)
	if err != nil {
		return Snapshot{}, err
	}

	id := uuid.NewString()
	key, err := object.Key(strconv.FormatInt(studentID, 10), id, doc.FileName)
	if err != nil {
		return Snapshot{}, err
	}
	size, err := s.Store.Put(ctx, key, contentTypePDF, bytes.NewReader(doc.Bytes))
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		ID:         id,
		StudentID:  studentID,
		Template:   string(doc.Template),
		Layout:     string(doc.Layout),
		StorageKey: key,
		FileName:   doc.FileName,
		SizeBytes:  size,
		Degraded:   doc.Degraded,
		CreatedBy:  createdBy,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, snap); err != nil {
		if delErr := s.Store.Delete(ctx, key); delErr != nil {
			telemetry.Warn("snapshot.cleanup_failed", map[string]any{"key": key, "error": delErr.Error()})
		}
		return Snapshot{}, err
	}
	metrics.IncSnapshot()
	telemetry.Info("snapshot.created", map[string]any{
		"snapshot_id": snap.ID,
		"student_id":  studentID,
		"template":    snap.Template,
		"bytes":       size,
	})
	return snap, nil
}

// Get returns a snapshot by id.
func (s *Service) Get(ctx context.Context, id string) (Snapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Snapshot{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns snapshots of a student ordered newest-first.
func (s *Service) List(ctx context.Context, studentID int64, limit, offset int) ([]Snapshot, error) {
	if studentID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByStudent(ctx, studentID, limit, offset)
}

// Open streams the stored PDF of snap.
func (s *Service) Open(ctx context.Context, snap Snapshot) (io.ReadCloser, error) {
	rc, err := s.Store.Open(ctx, snap.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rc, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
