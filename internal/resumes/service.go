package resumes

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"time"

	"resume-portal/internal/shared/cache"
	"resume-portal/internal/shared/metrics"
	"resume-portal/internal/shared/telemetry"
	"resume-portal/resume/model"
	"resume-portal/resume/render"
)

// StudentDirectory supplies the header block for a student.
type StudentDirectory interface {
	StudentInfo(ctx context.Context, id int64) (model.StudentInfo, error)
}

// Document is a rendered resume ready to be served.
type Document struct {
	Bytes    []byte
	FileName string
	Template model.Template
	Layout   model.Layout
	Degraded bool
	CacheHit bool
}

// ShareLink is a public link to a student's rendered resume.
type ShareLink struct {
	Token     string
	Path      string
	ExpiresAt time.Time
}

// Service renders and shares stored resumes.
type Service struct {
	Students StudentDirectory
	Repo     Repo
	Renderer *render.Renderer
	Cache    cache.PDFCache
	ShareTTL time.Duration
	Now      func() time.Time
}

// NewService constructs a Service over the built-in templates. A nil cache disables caching.
func NewService(students StudentDirectory, repo Repo, pdfCache cache.PDFCache, shareTTL time.Duration) *Service {
	if pdfCache == nil {
		pdfCache = cache.Nop{}
	}
	return &Service{
		Students: students,
		Repo:     repo,
		Renderer: render.NewRenderer(),
		Cache:    pdfCache,
		ShareTTL: shareTTL,
		Now:      time.Now,
	}
}

// Templates lists the template names clients may request.
func (s *Service) Templates() []model.Template {
	return s.Renderer.Templates()
}

// ResumeData returns the stored resume of a student. A student without a
// stored resume gets empty data.
func (s *Service) ResumeData(ctx context.Context, studentID int64) (model.ResumeData, error) {
	if studentID <= 0 {
		return model.ResumeData{}, ErrInvalidInput
	}
	rec, err := s.Repo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.ResumeData{}, nil
		}
		return model.ResumeData{}, err
	}
	return rec.Data, nil
}

// Save stores data as the resume of an existing student.
func (s *Service) Save(ctx context.Context, studentID int64, data model.ResumeData) (Record, error) {
	if studentID <= 0 {
		return Record{}, ErrInvalidInput
	}
	if _, err := s.Students.StudentInfo(ctx, studentID); err != nil {
		return Record{}, err
	}
	rec := Record{StudentID: studentID, Data: data.Normalize(), UpdatedAt: s.now().UTC()}
	if err := s.Repo.Upsert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// RenderPDF renders the stored resume of a student with the named template
// and layout. Unknown templates draw as modern. Template failures produce a
// degraded document rather than an error.
func (s *Service) RenderPDF(ctx context.Context, studentID int64, template, layout string) (Document, error) {
	if studentID <= 0 {
		return Document{}, ErrInvalidInput
	}
	info, err := s.Students.StudentInfo(ctx, studentID)
	if err != nil {
		return Document{}, err
	}
	data, err := s.ResumeData(ctx, studentID)
	if err != nil {
		return Document{}, err
	}

	tpl, _ := s.Renderer.Resolve(template)
	lay := model.ParseLayout(layout)
	doc := Document{
		FileName: model.FileName(info.Name, string(tpl)),
		Template: tpl,
		Layout:   lay,
	}

	// The footer date and the cache key's day come from the same instant.
	now := s.now()
	key := pdfCacheKey(tpl, lay, now, data, info)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		metrics.IncPDFCache(true)
		doc.Bytes = cached
		doc.CacheHit = true
		return doc, nil
	}
	metrics.IncPDFCache(false)

	start := time.Now()
	var buf bytes.Buffer
	res, err := s.Renderer.At(now).Render(ctx, &buf, data, info, template, layout)
	metrics.ObserveRenderDurationMs(metrics.Since(start))
	if err != nil {
		return Document{}, err
	}
	metrics.IncRender(res.Degraded)

	doc.Bytes = buf.Bytes()
	doc.Degraded = res.Degraded
	if !res.Degraded {
		s.Cache.Set(ctx, key, doc.Bytes)
	}

	telemetry.Info("resume.rendered", map[string]any{
		"student_id": studentID,
		"template":   string(tpl),
		"layout":     string(lay),
		"bytes":      res.Bytes,
		"degraded":   res.Degraded,
		"empty":      data.IsEmpty(),
	})
	return doc, nil
}

// Share issues a public token for the resume of an existing student.
func (s *Service) Share(ctx context.Context, studentID int64) (ShareLink, error) {
	if studentID <= 0 {
		return ShareLink{}, ErrInvalidInput
	}
	if _, err := s.Students.StudentInfo(ctx, studentID); err != nil {
		return ShareLink{}, err
	}
	now := s.now()
	token := EncodeShareToken(studentID, now)
	return ShareLink{
		Token:     token,
		Path:      "/api/v1/shared/resumes/" + token + "/pdf",
		ExpiresAt: ShareTokenExpiry(now, s.ShareTTL),
	}, nil
}

// RenderShared renders the resume a share token points at.
func (s *Service) RenderShared(ctx context.Context, token, template, layout string) (Document, error) {
	studentID, err := DecodeShareToken(token, s.now(), s.ShareTTL)
	if err != nil {
		return Document{}, err
	}
	return s.RenderPDF(ctx, studentID, template, layout)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// pdfCacheKey covers everything that changes the drawn page, including the
// footer date.
func pdfCacheKey(tpl model.Template, lay model.Layout, now time.Time, data model.ResumeData, info model.StudentInfo) string {
	parts := []string{
		"v1",
		string(tpl),
		string(lay),
		now.Format("2006-01-02"),
		info.Name,
		info.Email,
		info.Branch,
	}
	for _, f := range model.Fields {
		parts = append(parts, string(f)+"="+strconv.Quote(data.Get(f)))
	}
	return cache.Key(parts...)
}
