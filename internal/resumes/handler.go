package resumes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/server/middleware"
	"resume-portal/internal/shared/server/respond"
	"resume-portal/internal/students"
	"resume-portal/resume/model"
	"resume-portal/resume/render"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	// PublicBaseURL prefixes share links; empty yields relative links.
	PublicBaseURL string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, publicBaseURL string) *Handler {
	return &Handler{Svc: svc, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume-templates", h.templates)
	rg.GET("/students/:id/resume", h.get)
	rg.PUT("/students/:id/resume", h.save)
	rg.GET("/students/:id/resume/pdf", h.pdf)
	rg.POST("/students/:id/resume/share", h.share)
	rg.GET("/shared/resumes/:token/pdf", h.sharedPDF)
}

type templatesResponse struct {
	Templates []model.Template `json:"templates"`
	Default   model.Template   `json:"default"`
	Layouts   []model.Layout   `json:"layouts"`
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, templatesResponse{
		Templates: h.Svc.Templates(),
		Default:   model.DefaultTemplate,
		Layouts:   []model.Layout{model.LayoutSingleColumn, model.LayoutTwoColumn},
	})
}

type resumeResponse struct {
	StudentID int64            `json:"studentId"`
	Resume    model.ResumeData `json:"resume"`
}

func (h *Handler) get(c *gin.Context) {
	studentID, ok := h.authorizedStudent(c)
	if !ok {
		return
	}
	data, err := h.Svc.ResumeData(c.Request.Context(), studentID)
	if err != nil {
		writeError(c, err, "failed to load resume")
		return
	}
	respond.OK(c, resumeResponse{StudentID: studentID, Resume: data})
}

func (h *Handler) save(c *gin.Context) {
	studentID, ok := h.authorizedStudent(c)
	if !ok {
		return
	}
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	rec, err := h.Svc.Save(c.Request.Context(), studentID, model.ResumeDataFromMap(raw))
	if err != nil {
		writeError(c, err, "failed to save resume")
		return
	}
	respond.OK(c, resumeResponse{StudentID: studentID, Resume: rec.Data})
}

func (h *Handler) pdf(c *gin.Context) {
	studentID, ok := h.authorizedStudent(c)
	if !ok {
		return
	}
	template := c.Query("template")
	c.Set(middleware.TemplateKey, template)

	doc, err := h.Svc.RenderPDF(c.Request.Context(), studentID, template, c.Query("layout"))
	if err != nil {
		writeError(c, err, "failed to render resume")
		return
	}
	writePDF(c, doc)
}

type shareResponse struct {
	Token     string     `json:"token"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (h *Handler) share(c *gin.Context) {
	studentID, ok := h.authorizedStudent(c)
	if !ok {
		return
	}
	link, err := h.Svc.Share(c.Request.Context(), studentID)
	if err != nil {
		writeError(c, err, "failed to share resume")
		return
	}
	resp := shareResponse{Token: link.Token, URL: h.PublicBaseURL + link.Path}
	if !link.ExpiresAt.IsZero() {
		exp := link.ExpiresAt.UTC()
		resp.ExpiresAt = &exp
	}
	respond.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) sharedPDF(c *gin.Context) {
	template := c.Query("template")
	c.Set(middleware.TemplateKey, template)

	doc, err := h.Svc.RenderShared(c.Request.Context(), c.Param("token"), template, c.Query("layout"))
	if err != nil {
		writeError(c, err, "failed to render resume")
		return
	}
	writePDF(c, doc)
}

// authorizedStudent parses :id and checks the caller may read it. It writes the
// error response itself when it returns false.
func (h *Handler) authorizedStudent(c *gin.Context) (int64, bool) {
	studentID, err := ParseStudentID(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid student id", nil)
		return 0, false
	}
	c.Set(middleware.StudentIDKey, studentID)
	if !middleware.CanAccessStudent(c, studentID) {
		respond.Error(c, http.StatusForbidden, "forbidden", "not allowed to access this student", nil)
		return 0, false
	}
	return studentID, true
}

// ParseStudentID parses a positive decimal student id.
func ParseStudentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidInput
	}
	return id, nil
}

func writePDF(c *gin.Context, doc Document) {
	c.Set(middleware.TemplateKey, string(doc.Template))
	cacheState := "miss"
	if doc.CacheHit {
		cacheState = "hit"
	}
	c.Set(middleware.CacheKey, cacheState)

	c.Header("X-Resume-Template", string(doc.Template))
	c.Header("X-Resume-Layout", string(doc.Layout))
	c.Header("X-PDF-Cache", cacheState)
	if doc.Degraded {
		c.Header("X-Resume-Degraded", "true")
	}
	respond.PDF(c, doc.FileName, doc.Bytes, c.Query("download") == "true" || c.Query("download") == "1")
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, students.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "student not found", nil)
	case errors.Is(err, ErrInvalidShareToken):
		respond.Error(c, http.StatusNotFound, "not_found", "share link not found", nil)
	case errors.Is(err, ErrShareTokenExpired):
		respond.Error(c, http.StatusGone, "share_expired", "share link expired", nil)
	case errors.Is(err, render.ErrSinkUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "render_unavailable", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
