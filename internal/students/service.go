package students

import (
	"context"
	"strings"

	"resume-portal/resume/model"
)

// Service exposes student lookups to the render endpoints.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the student with id.
func (s *Service) Get(ctx context.Context, id int64) (Student, error) {
	if id <= 0 {
		return Student{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// Register creates a student. Name and email are required.
func (s *Service) Register(ctx context.Context, name, email, branch string) (Student, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return Student{}, ErrInvalidInput
	}
	return s.Repo.Create(ctx, Student{Name: name, Email: email, Branch: strings.TrimSpace(branch)})
}

// StudentInfo returns the header block templates print for id.
func (s *Service) StudentInfo(ctx context.Context, id int64) (model.StudentInfo, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return model.StudentInfo{}, err
	}
	return model.StudentInfo{Name: st.Name, Email: st.Email, Branch: st.Branch}.Normalize(), nil
}
