package students

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/auth"
	"resume-portal/internal/shared/server/middleware"
	"resume-portal/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches student routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/students", middleware.RequireRole(auth.RoleFaculty, auth.RoleAdmin), h.create)
	rg.GET("/students/:id", h.get)
}

type createRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Branch string `json:"branch"`
}

type studentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(s Student) studentResponse {
	return studentResponse{ID: s.ID, Name: s.Name, Email: s.Email, Branch: s.Branch, CreatedAt: s.CreatedAt}
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name and a valid email are required", nil)
		return
	}
	s, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Branch)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create student", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(s))
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid student id", nil)
		return
	}
	c.Set(middleware.StudentIDKey, id)
	if !middleware.CanAccessStudent(c, id) {
		respond.Error(c, http.StatusForbidden, "forbidden", "not allowed to access this student", nil)
		return
	}
	s, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "student not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch student", nil)
		}
		return
	}
	respond.OK(c, toResponse(s))
}
