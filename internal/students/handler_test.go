package students

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portal/internal/shared/auth"
	"resume-portal/internal/shared/server/middleware"
)

func TestStudentHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	j, err := auth.NewJWT("students-test-secret", "dev")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Auth(j))
	NewHandler(NewService(NewMemoryRepo())).RegisterRoutes(r.Group("/api/v1"))

	send := func(method, path, sub string, role auth.Role, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		token, err := j.Sign(sub, role, "")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp
	}

	resp := send(http.MethodPost, "/api/v1/students", "1", auth.RoleStudent, `{"name":"Jane","email":"jane@uni.edu"}`)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = send(http.MethodPost, "/api/v1/students", "admin", auth.RoleAdmin, `{"name":"Jane","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = send(http.MethodPost, "/api/v1/students", "admin", auth.RoleAdmin, `{"name":"Jane","email":"jane@uni.edu","branch":"CSE"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created studentResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	resp = send(http.MethodGet, "/api/v1/students/1", "1", auth.RoleStudent, "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = send(http.MethodGet, "/api/v1/students/1", "2", auth.RoleStudent, "")
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = send(http.MethodGet, "/api/v1/students/3", "f", auth.RoleFaculty, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
