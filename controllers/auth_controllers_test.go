package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storeratings/middleware"
	"storeratings/models"
	"storeratings/services"
)

func newControllerDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func newAuthRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService("test-secret", 60)
	auth := services.NewAuthService(services.AuthServiceOptions{DB: db, Tokens: tokens})
	ctrl := NewAuthController(db, auth, tokens, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/auth/signup", ctrl.Signup)
	v1.POST("/auth/login", ctrl.Login)
	v1.PATCH("/auth/update-password", middleware.AuthMiddleware(tokens, nil), ctrl.UpdatePassword)
	v1.GET("/profile", middleware.AuthMiddleware(tokens, nil), ctrl.GetProfile)
	return router, tokens
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(router *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestSignupEndpoint(t *testing.T) {
	db, mock := newControllerDB(t)
	router, _ := newAuthRouter(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	rec, env := doJSON(router, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Alice Rose Carpenter","email":"alice@example.com","password":"Strong@1"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, env.Code)
	assert.Contains(t, string(env.Data), `"id":21`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupEndpointWeakPassword(t *testing.T) {
	db, _ := newControllerDB(t)
	router, _ := newAuthRouter(t, db)

	rec, env := doJSON(router, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Alice Rose Carpenter","email":"alice@example.com","password":"weakpass"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.Code)
	assert.Contains(t, env.Message, "uppercase")
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	db, mock := newControllerDB(t)
	router, _ := newAuthRouter(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	rec, env := doJSON(router, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Alice Rose Carpenter","email":"alice@example.com","password":"Strong@1"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginEndpointMissingFields(t *testing.T) {
	db, _ := newControllerDB(t)
	router, _ := newAuthRouter(t, db)

	rec, env := doJSON(router, http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", env.Message)
}

func TestProfileEndpoint(t *testing.T) {
	db, mock := newControllerDB(t)
	router, tokens := newAuthRouter(t, db)

	token, err := tokens.Generate(services.UserInfo{UserId: 21, Role: models.RoleUser, Email: "alice@example.com"})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT "id","name","email","address","role" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(21, "Alice Rose Carpenter", "alice@example.com", "", "user"))

	rec, env := doJSON(router, http.MethodGet, "/api/v1/profile", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"email":"alice@example.com"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileEndpointRequiresToken(t *testing.T) {
	db, _ := newControllerDB(t)
	router, _ := newAuthRouter(t, db)

	rec, _ := doJSON(router, http.MethodGet, "/api/v1/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
