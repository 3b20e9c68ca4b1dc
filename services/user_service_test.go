package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storeratings/errors"
	"storeratings/models"
)

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	_, err := svc.Create("Alice Rose Carpenter", "alice@example.com", "", "Strong@1", "superadmin")
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidRole, appErr.Code)
	expectMet(t, mock)
}

func TestUserCreateDuplicateEmailIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err := svc.Create("Alice Rose Carpenter", "alice@example.com", "12 Main St", "Strong@1", models.RoleUser)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeConflict, appErr.Code)
	expectMet(t, mock)
}

func TestUserCreateLowercasesEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Alice Rose Carpenter", "alice@example.com",
			sqlmock.AnyArg(), "12 Main St", "owner").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	id, err := svc.Create("Alice Rose Carpenter", "ALICE@Example.COM", "12 Main St", "Strong@1", models.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, uint(4), id)
	expectMet(t, mock)
}

func TestUserListAppliesFiltersAndSort(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE name ILIKE .+ AND role = .+ ORDER BY email DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(1, "Alice Rose Carpenter", "alice@example.com", "12 Main St", "owner"))

	users, err := svc.List(UserFilter{Name: "alice", Role: "owner", Sort: "email:desc"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleOwner, users[0].Role)
	expectMet(t, mock)
}

func TestUserListUnknownSortFallsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users" ORDER BY name ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}))

	_, err := svc.List(UserFilter{Sort: "password:desc"})
	require.NoError(t, err)
	expectMet(t, mock)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, _, err := svc.GetByID(99)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	expectMet(t, mock)
}

func TestUserGetByIDPlainUserHasNoRating(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(2, "Alice Rose Carpenter", "alice@example.com", "", "user"))

	user, avg, err := svc.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Nil(t, avg)
	expectMet(t, mock)
}

func TestUserGetByIDOwnerIncludesStoreAverage(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(3, "Oliver Grant Montgomery", "owner@example.com", "", "owner"))
	mock.ExpectQuery(`SELECT "id" FROM "stores" WHERE owner_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`SELECT AVG\(value\) FROM ratings WHERE store_id`).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.75))

	user, avg, err := svc.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, user.Role)
	require.NotNil(t, avg)
	assert.Equal(t, 3.75, *avg)
	expectMet(t, mock)
}

func TestUserGetByIDOwnerWithoutStore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "role"}).
			AddRow(3, "Oliver Grant Montgomery", "owner@example.com", "", "owner"))
	mock.ExpectQuery(`SELECT "id" FROM "stores" WHERE owner_id`).
		WillReturnError(gorm.ErrRecordNotFound)

	user, avg, err := svc.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.Nil(t, avg)
	expectMet(t, mock)
}
