package resumes

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portal/internal/shared/cache"
	"resume-portal/internal/shared/telemetry"
	"resume-portal/internal/students"
	"resume-portal/resume/model"
	"resume-portal/resume/pdftext"
	"resume-portal/resume/render"
)

var testNow = time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	students *students.Service
	repo     *MemoryRepo
	mrs      *miniredis.Miniredis
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	mrs := miniredis.RunT(t)
	studentSvc := students.NewService(students.NewMemoryRepo())
	_, err := studentSvc.Register(context.Background(), "Jane Doe", "jane@uni.edu", "Computer Science")
	require.NoError(t, err)

	repo := NewMemoryRepo()
	pdfCache := cache.NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mrs.Addr()}), time.Minute)
	svc := NewService(studentSvc, repo, pdfCache, 7*24*time.Hour)
	svc.Now = func() time.Time { return testNow }
	return fixture{svc: svc, students: studentSvc, repo: repo, mrs: mrs}
}

func sampleData() model.ResumeData {
	return model.ResumeData{
		Objective:  "Build reliable systems.",
		Skills:     "Go, PostgreSQL, Redis",
		Experience: "Acme Corp\n2021-2023\n• Shipped the billing service",
	}
}

func TestRenderPDFMissingResumeRendersEmptyPage(t *testing.T) {
	f := newFixture(t)

	doc, err := f.svc.RenderPDF(context.Background(), 1, "classic", "")
	require.NoError(t, err)
	assert.Equal(t, model.TemplateClassic, doc.Template)
	assert.Equal(t, model.LayoutSingleColumn, doc.Layout)
	assert.Equal(t, "Jane_Doe_classic_Resume.pdf", doc.FileName)
	assert.False(t, doc.Degraded)
	assert.False(t, doc.CacheHit)

	text, err := pdftext.Text(context.Background(), doc.Bytes)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestRenderPDFLogsEmptyResumes(t *testing.T) {
	f := newFixture(t)
	var logs bytes.Buffer
	telemetry.SetOutput(&logs)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	_, err := f.svc.RenderPDF(context.Background(), 1, "modern", "")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"empty":true`)

	logs.Reset()
	_, err = f.svc.Save(context.Background(), 1, sampleData())
	require.NoError(t, err)
	_, err = f.svc.RenderPDF(context.Background(), 1, "modern", "")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"empty":false`)
}

func TestRenderPDFCachesNonDegradedDocuments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Save(ctx, 1, sampleData())
	require.NoError(t, err)

	first, err := f.svc.RenderPDF(ctx, 1, "Technical", "two-column")
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Len(t, f.mrs.Keys(), 1)

	second, err := f.svc.RenderPDF(ctx, 1, "technical", "two-column")
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.True(t, bytes.Equal(first.Bytes, second.Bytes))
	assert.Equal(t, model.TemplateTechnical, second.Template)

	// Editing the resume changes the key.
	data := sampleData()
	data.Skills = "Go, Rust"
	_, err = f.svc.Save(ctx, 1, data)
	require.NoError(t, err)
	third, err := f.svc.RenderPDF(ctx, 1, "technical", "two-column")
	require.NoError(t, err)
	assert.False(t, third.CacheHit)
}

func TestRenderPDFUnknownTemplateFallsBackToModern(t *testing.T) {
	f := newFixture(t)
	doc, err := f.svc.RenderPDF(context.Background(), 1, "bogus", "")
	require.NoError(t, err)
	assert.Equal(t, model.TemplateModern, doc.Template)
	assert.Equal(t, "Jane_Doe_modern_Resume.pdf", doc.FileName)
}

func TestRenderPDFDegradedIsNotCached(t *testing.T) {
	f := newFixture(t)
	reg := render.NewRegistry()
	reg.Register(&render.Skin{
		Template: "broken",
		Chrome:   func(*render.Frame) float64 { panic("boom") },
	})
	f.svc.Renderer.Registry = reg

	doc, err := f.svc.RenderPDF(context.Background(), 1, "broken", "")
	require.NoError(t, err)
	assert.True(t, doc.Degraded)
	assert.Empty(t, f.mrs.Keys())

	text, err := pdftext.Text(context.Background(), doc.Bytes)
	require.NoError(t, err)
	assert.Contains(t, text, "Error Generating Resume")
}

func TestRenderPDFErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RenderPDF(ctx, 0, "modern", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.RenderPDF(ctx, 404, "modern", "")
	assert.ErrorIs(t, err, students.ErrNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f.svc.RenderPDF(cancelled, 1, "modern", "")
	require.Error(t, err)
}

func TestRenderPDFRedisDownStillRenders(t *testing.T) {
	f := newFixture(t)
	f.mrs.Close()

	doc, err := f.svc.RenderPDF(context.Background(), 1, "elegant", "")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
	assert.False(t, doc.CacheHit)
}

func TestShareAndRenderShared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	link, err := f.svc.Share(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/shared/resumes/"+link.Token+"/pdf", link.Path)
	assert.Equal(t, testNow.Add(7*24*time.Hour), link.ExpiresAt)

	doc, err := f.svc.RenderShared(ctx, link.Token, "minimalist", "")
	require.NoError(t, err)
	assert.Equal(t, model.TemplateMinimalist, doc.Template)

	f.svc.Now = func() time.Time { return testNow.Add(8 * 24 * time.Hour) }
	_, err = f.svc.RenderShared(ctx, link.Token, "minimalist", "")
	assert.ErrorIs(t, err, ErrShareTokenExpired)

	_, err = f.svc.Share(ctx, 77)
	assert.ErrorIs(t, err, students.ErrNotFound)
}

func TestSaveRequiresExistingStudent(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Save(context.Background(), 5, sampleData())
	assert.True(t, errors.Is(err, students.ErrNotFound))

	rec, err := f.svc.Save(context.Background(), 1, model.ResumeData{Objective: "a\r\nb"})
	require.NoError(t, err)
	assert.Equal(t, "a\nb", rec.Data.Objective)
	assert.Equal(t, testNow, rec.UpdatedAt)
}

func TestPDFCacheKeyVariesByDay(t *testing.T) {
	info := model.StudentInfo{Name: "Jane"}
	a := pdfCacheKey(model.TemplateModern, model.LayoutSingleColumn, testNow, sampleData(), info)
	b := pdfCacheKey(model.TemplateModern, model.LayoutSingleColumn, testNow.Add(time.Hour), sampleData(), info)
	c := pdfCacheKey(model.TemplateModern, model.LayoutSingleColumn, testNow.Add(24*time.Hour), sampleData(), info)
	d := pdfCacheKey(model.TemplateModern, model.LayoutTwoColumn, testNow, sampleData(), info)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestRenderPDFFooterAndCacheShareOneClock(t *testing.T) {
	f := newFixture(t)
	f.svc.Renderer.Now = func() time.Time { return testNow.AddDate(1, 0, 0) }
	_, err := f.svc.Save(context.Background(), 1, sampleData())
	require.NoError(t, err)

	doc, err := f.svc.RenderPDF(context.Background(), 1, "modern", "")
	require.NoError(t, err)
	text, err := pdftext.Text(context.Background(), doc.Bytes)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe | Modern Template | 3/4/2025")

	info, err := f.students.StudentInfo(context.Background(), 1)
	require.NoError(t, err)
	key := pdfCacheKey(model.TemplateModern, model.LayoutSingleColumn, testNow, sampleData().Normalize(), info)
	assert.True(t, f.mrs.Exists(key))
}
