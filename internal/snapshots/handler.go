package snapshots

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/resumes"
	"resume-portal/internal/shared/server/middleware"
	"resume-portal/internal/shared/server/respond"
	"resume-portal/internal/students"
	"resume-portal/resume/render"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches snapshot routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/students/:id/resume/snapshots", h.create)
	rg.GET("/students/:id/resume/snapshots", h.list)
	rg.GET("/resume-snapshots/:id/download", h.download)
}

type createRequest struct {
	Template string `json:"template"`
	Layout   string `json:"layout"`
}

type snapshotResponse struct {
	ID        string    `json:"id"`
	StudentID int64     `json:"studentId"`
	Template  string    `json:"template"`
	Layout    string    `json:"layout"`
	FileName  string    `json:"fileName"`
	SizeBytes int64     `json:"sizeBytes"`
	Degraded  bool      `json:"degraded"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(s Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:        s.ID,
		StudentID: s.StudentID,
		Template:  s.Template,
		Layout:    s.Layout,
		FileName:  s.FileName,
		SizeBytes: s.SizeBytes,
		Degraded:  s.Degraded,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}

func (h *Handler) create(c *gin.Context) {
	studentID, ok := authorizedStudent(c)
	if !ok {
		return
	}
	var req createRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	c.Set(middleware.TemplateKey, req.Template)

	snap, err := h.Svc.Create(c.Request.Context(), studentID, req.Template, req.Layout, middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err, "failed to create snapshot")
		return
	}
	c.Set(middleware.TemplateKey, snap.Template)
	respond.JSON(c, http.StatusCreated, toResponse(snap))
}

func (h *Handler) list(c *gin.Context) {
	studentID, ok := authorizedStudent(c)
	if !ok {
		return
	}

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}
	if v := c.Query("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "offset must be a non-negative integer", nil)
			return
		}
		offset = parsed
	}

	items, err := h.Svc.List(c.Request.Context(), studentID, limit, offset)
	if err != nil {
		writeError(c, err, "failed to list snapshots")
		return
	}
	out := make([]snapshotResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toResponse(s))
	}
	respond.OK(c, gin.H{"items": out, "limit": limit, "offset": offset})
}

func (h *Handler) download(c *gin.Context) {
	snap, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to fetch snapshot")
		return
	}
	c.Set(middleware.StudentIDKey, snap.StudentID)
	if !middleware.CanAccessStudent(c, snap.StudentID) {
		respond.Error(c, http.StatusForbidden, "forbidden", "access denied", nil)
		return
	}

	reader, err := h.Svc.Open(c.Request.Context(), snap)
	if err != nil {
		writeError(c, err, "failed to load snapshot")
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snap.FileName))
	if snap.SizeBytes > 0 {
		c.Header("Content-Length", strconv.FormatInt(snap.SizeBytes, 10))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func authorizedStudent(c *gin.Context) (int64, bool) {
	studentID, err := resumes.ParseStudentID(c.Param("id"))
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

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, resumes.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, students.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "student not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "snapshot not found", nil)
	case errors.Is(err, render.ErrSinkUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "render_unavailable", fallback, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
