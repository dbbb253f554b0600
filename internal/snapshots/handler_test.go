package snapshots

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portal/internal/resumes"
	"resume-portal/internal/shared/auth"
	"resume-portal/internal/shared/server/middleware"
	localstore "resume-portal/internal/shared/storage/object/local"
	"resume-portal/internal/students"
)

func newSnapshotRouter(t *testing.T) (*gin.Engine, *auth.JWT) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	studentSvc := students.NewService(students.NewMemoryRepo())
	for _, email := range []string{"a@uni.edu", "b@uni.edu"} {
		_, err := studentSvc.Register(context.Background(), "Student "+email[:1], email, "")
		require.NoError(t, err)
	}
	resumeSvc := resumes.NewService(studentSvc, resumes.NewMemoryRepo(), nil, time.Hour)
	svc := &Service{Repo: NewMemoryRepo(), Renderer: resumeSvc, Store: localstore.New(t.TempDir())}

	j, err := auth.NewJWT("snapshots-test-secret", "dev")
	require.NoError(t, err)
	r := gin.New()
	r.Use(middleware.Auth(j))
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, j
}

func call(t *testing.T, r *gin.Engine, j *auth.JWT, method, path, sub string, role auth.Role, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := j.Sign(sub, role, "")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSnapshotLifecycle(t *testing.T) {
	r, j := newSnapshotRouter(t)

	resp := call(t, r, j, http.MethodPost, "/api/v1/students/1/resume/snapshots", "1", auth.RoleStudent, `{"template":"academic","layout":"two-column"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var created snapshotResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "academic", created.Template)
	assert.Equal(t, "Student_a_academic_Resume.pdf", created.FileName)
	assert.Equal(t, "1", created.CreatedBy)
	assert.Positive(t, created.SizeBytes)

	resp = call(t, r, j, http.MethodPost, "/api/v1/students/1/resume/snapshots", "1", auth.RoleStudent, "")
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = call(t, r, j, http.MethodGet, "/api/v1/students/1/resume/snapshots?limit=1", "7", auth.RoleFaculty, "")
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Items []snapshotResponse `json:"items"`
		Limit int                `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Limit)

	resp = call(t, r, j, http.MethodGet, "/api/v1/resume-snapshots/"+created.ID+"/download", "1", auth.RoleStudent, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Student_a_academic_Resume.pdf"`, resp.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")))
	assert.EqualValues(t, created.SizeBytes, resp.Body.Len())

	resp = call(t, r, j, http.MethodGet, "/api/v1/resume-snapshots/"+created.ID+"/download", "2", auth.RoleStudent, "")
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestSnapshotValidation(t *testing.T) {
	r, j := newSnapshotRouter(t)

	resp := call(t, r, j, http.MethodPost, "/api/v1/students/2/resume/snapshots", "1", auth.RoleStudent, "")
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = call(t, r, j, http.MethodPost, "/api/v1/students/9/resume/snapshots", "1", auth.RoleAdmin, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = call(t, r, j, http.MethodPost, "/api/v1/students/1/resume/snapshots", "1", auth.RoleStudent, "{")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = call(t, r, j, http.MethodGet, "/api/v1/students/1/resume/snapshots?limit=zero", "1", auth.RoleStudent, "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = call(t, r, j, http.MethodGet, "/api/v1/resume-snapshots/nope/download", "1", auth.RoleAdmin, "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = call(t, r, j, http.MethodGet, "/api/v1/resume-snapshots/1b4e28ba-2fa1-11d2-883f-0016d3cca427/download", "1", auth.RoleAdmin, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
