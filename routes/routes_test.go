package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecretKey: "routes-test-secret",
		RedisHost:    "localhost",
		RedisPort:    "6379",
	}
	return SetupRouter(db, cfg), mock
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestHomeRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hrms-http-service")
}

func TestSwaggerDocServed(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HRMS HTTP Service API")
	assert.Contains(t, w.Body.String(), "/positions/lookup")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/departments", "/api/positions", "/api/employees",
		"/api/attendance", "/api/leaves",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "expected %s to be protected", path)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, mock := newTestRouter(t)

	hash, err := utils.HashPassword("right-pass")
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `admins` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "password", "email", "first_name", "last_name",
			"phone", "created_at", "updated_at",
		}).AddRow(1, "admin", hash, "admin@example.com", "", "", "", now, now))

	w := postJSON(r, "/api/auth/login", gin.H{"username": "admin", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r, mock := newTestRouter(t)

	hash, err := utils.HashPassword("right-pass")
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `admins` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "password", "email", "first_name", "last_name",
			"phone", "created_at", "updated_at",
		}).AddRow(1, "admin", hash, "admin@example.com", "", "", "", now, now))

	w := postJSON(r, "/api/auth/login", gin.H{"username": "admin", "password": "right-pass"})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	// The token opens the protected department list
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `departments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `departments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestPositionsLookupIsPublicAndBare(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT `id`,`title` FROM `positions` WHERE department_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(3, "Backend Engineer"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/positions/lookup?department_id=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// The dropdown endpoint answers with a plain array, not the envelope
	assert.JSONEq(t, `[{"id":3,"title":"Backend Engineer"}]`, w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/api/auth/register", gin.H{
		"username":         "admin",
		"email":            "admin@example.com",
		"password":         "short",
		"confirm_password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password must be at least 8 characters long.")
}

func TestLogoutWithoutTokenSucceeds(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out.")
}
