package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"availit-backend/internal/models"
	"availit-backend/internal/repository"
	"availit-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) CreateUser(*models.User) error { return nil }

func (s *stubUserRepo) FindUserByUsername(username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindAllUsers() ([]models.User, error) { return nil, nil }

func (s *stubUserRepo) UpdateCityByUsername(string, string) error { return nil }

type identity struct {
	username string
	role     string
	present  bool
}

func identifyRouter(tokens *service.TokenService, repo repository.UserRepository, got *identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identify(tokens, repo))
	r.GET("/probe", func(c *gin.Context) {
		if username, ok := c.Get(ContextUsername); ok {
			got.present = true
			got.username = username.(string)
			got.role = c.GetString(ContextRole)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func probe(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentify_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("identify-test-secret", time.Hour)
	alice := &models.User{ID: 1, Username: "alice", Role: models.RoleAdmin}
	repo := &stubUserRepo{users: map[string]*models.User{"alice": alice}}

	token, err := tokens.GenerateToken(alice)
	require.NoError(t, err)

	var got identity
	r := identifyRouter(tokens, repo, &got)

	w := probe(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.present)
	assert.Equal(t, "alice", got.username)
	assert.Equal(t, models.RoleAdmin, got.role)
}

// The filter fails open: a bad token leaves the request anonymous instead of
// producing a 401.
func TestIdentify_FailsOpen(t *testing.T) {
	tokens := service.NewTokenService("identify-test-secret", time.Hour)
	alice := &models.User{ID: 1, Username: "alice", Role: models.RoleUser}
	repo := &stubUserRepo{users: map[string]*models.User{"alice": alice}}

	valid, err := tokens.GenerateToken(alice)
	require.NoError(t, err)

	ghost, err := tokens.GenerateToken(&models.User{Username: "ghost", Role: models.RoleUser})
	require.NoError(t, err)

	expired, err := service.NewTokenService("identify-test-secret", -time.Minute).
		GenerateToken(alice)
	require.NoError(t, err)

	headers := map[string]string{
		"no header":         "",
		"not bearer":        "Basic dXNlcjpwYXNz",
		"malformed token":   "Bearer not.a.jwt",
		"tampered token":    "Bearer " + valid[:len(valid)-2] + "xx",
		"expired token":     "Bearer " + expired,
		"unresolvable user": "Bearer " + ghost,
	}

	for name, header := range headers {
		var got identity
		r := identifyRouter(tokens, repo, &got)

		w := probe(r, header)
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.False(t, got.present, name)
	}
}
