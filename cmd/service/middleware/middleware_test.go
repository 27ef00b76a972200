package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/app/core"
	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/cmd/service/middleware"
	"github.com/reflectdiary/diary-api/pkg/security"
	"github.com/reflectdiary/diary-api/pkg/sqlstore"
)

func setupEngine(t *testing.T) (*gin.Engine, *core.Core) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := core.MustSetupCore(core.CoreConfig{
		Database: sqlstore.ConnectConfig{
			Driver: sqlstore.DRIVER_SQLITE,
			DSN:    ":memory:",
		},
		Security: core.Security{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
		},
	})

	engine := gin.New()
	engine.Use(middleware.I18n())
	engine.GET("/probe", middleware.Authorization(app), func(c *gin.Context) {
		claims, _ := v1.InjectTokenClaim(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return engine, app
}

func Test_Authorization_MissingToken(t *testing.T) {
	engine, _ := setupEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_Authorization_InvalidToken(t *testing.T) {
	engine, _ := setupEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_Authorization_ExpiredToken(t *testing.T) {
	engine, _ := setupEngine(t)

	token, err := security.SignUserToken("test-secret", 1, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_Authorization_ValidToken(t *testing.T) {
	engine, _ := setupEngine(t)

	token, err := security.SignUserToken("test-secret", 7, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}
