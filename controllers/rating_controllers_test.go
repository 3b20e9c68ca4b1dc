package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storeratings/middleware"
	"storeratings/models"
	"storeratings/services"
)

func newRatingRouter(t *testing.T, db *gorm.DB) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService("test-secret", 60)
	ratings := services.NewRatingService(services.RatingServiceOptions{DB: db})
	ctrl := NewRatingController(ratings)

	token, err := tokens.Generate(services.UserInfo{UserId: 7, Role: models.RoleUser, Email: "u@example.com"})
	require.NoError(t, err)

	router := gin.New()
	v1 := router.Group("/api/v1/user", middleware.AuthMiddleware(tokens, nil, models.RoleUser))
	v1.POST("/ratings", ctrl.SubmitRating)
	v1.PATCH("/ratings/:storeId", ctrl.ModifyRating)
	return router, token
}

func TestSubmitRatingEndpoint(t *testing.T) {
	db, mock := newControllerDB(t)
	router, token := newRatingRouter(t, db)

	mock.ExpectQuery(`SELECT "id" FROM "stores"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "ratings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	rec, env := doJSON(router, http.MethodPost, "/api/v1/user/ratings", `{"storeId":3,"rating":4}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, env.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRatingEndpointOutOfRange(t *testing.T) {
	db, _ := newControllerDB(t)
	router, token := newRatingRouter(t, db)

	rec, env := doJSON(router, http.MethodPost, "/api/v1/user/ratings", `{"storeId":3,"rating":9}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Rating must be 1-5", env.Message)
}

func TestModifyRatingEndpointBadStoreID(t *testing.T) {
	db, _ := newControllerDB(t)
	router, token := newRatingRouter(t, db)

	rec, env := doJSON(router, http.MethodPatch, "/api/v1/user/ratings/abc", `{"rating":3}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid storeId", env.Message)
}

func TestModifyRatingEndpointWithoutPriorRating(t *testing.T) {
	db, mock := newControllerDB(t)
	router, token := newRatingRouter(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "ratings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rec, env := doJSON(router, http.MethodPatch, "/api/v1/user/ratings/3", `{"rating":3}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No previous rating found. Use submit endpoint.", env.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingEndpointsAdminForbidden(t *testing.T) {
	db, _ := newControllerDB(t)
	router, _ := newRatingRouter(t, db)

	tokens := services.NewTokenService("test-secret", 60)
	adminToken, err := tokens.Generate(services.UserInfo{UserId: 1, Role: models.RoleAdmin, Email: "a@example.com"})
	require.NoError(t, err)

	rec, _ := doJSON(router, http.MethodPost, "/api/v1/user/ratings", `{"storeId":3,"rating":4}`, adminToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
