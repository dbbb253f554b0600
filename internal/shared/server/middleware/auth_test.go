package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-portal/internal/shared/auth"
)

func newTestJWT(t *testing.T) *auth.JWT {
	t.Helper()
	j, err := auth.NewJWT("middleware-test-secret", "dev")
	require.NoError(t, err)
	return j
}

func bearer(t *testing.T, j *auth.JWT, sub string, role auth.Role) string {
	t.Helper()
	token, err := j.Sign(sub, role, "")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(newTestJWT(t)))
	router.OPTIONS("/api/v1/students/1/resume/pdf", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/students/1/resume/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestAuthSkipsPublicPrefixes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(newTestJWT(t)))
	router.GET("/api/v1/shared/resumes/:token/pdf", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shared/resumes/abc/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(newTestJWT(t)))
	router.GET("/api/v1/resume-templates", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Token abc", "Bearer nope"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resume-templates", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, header)
		assert.Contains(t, resp.Body.String(), `"code":"unauthorized"`)
	}
}

func TestCanAccessStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	j := newTestJWT(t)

	cases := []struct {
		sub  string
		role auth.Role
		id   string
		want int
	}{
		{"42", auth.RoleStudent, "42", http.StatusOK},
		{"42", auth.RoleStudent, "43", http.StatusForbidden},
		{"f-1", auth.RoleFaculty, "43", http.StatusOK},
		{"a-1", auth.RoleAdmin, "7", http.StatusOK},
	}
	for _, tc := range cases {
		router := gin.New()
		router.Use(Auth(j))
		router.GET("/api/v1/students/:id", func(c *gin.Context) {
			id := int64(0)
			for _, ch := range c.Param("id") {
				id = id*10 + int64(ch-'0')
			}
			if !CanAccessStudent(c, id) {
				c.Status(http.StatusForbidden)
				return
			}
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+tc.id, nil)
		req.Header.Set("Authorization", bearer(t, j, tc.sub, tc.role))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, tc.want, resp.Code, "%s as %s reading %s", tc.sub, tc.role, tc.id)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	j := newTestJWT(t)
	router := gin.New()
	router.Use(Auth(j))
	router.GET("/api/v1/admin", RequireRole(auth.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
	req.Header.Set("Authorization", bearer(t, j, "1", auth.RoleStudent))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
	req.Header.Set("Authorization", bearer(t, j, "1", auth.RoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}
