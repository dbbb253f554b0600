package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-portal/internal/shared/telemetry"
)

// Context keys handlers set so the request log line can report them.
const (
	StudentIDKey = "studentId"
	TemplateKey  = "template"
	CacheKey     = "pdfCache"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		studentID, _ := c.Get(StudentIDKey)
		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"role":        string(RoleFromContext(c)),
			"student_id":  studentID,
			"template":    c.GetString(TemplateKey),
			"pdf_cache":   c.GetString(CacheKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
