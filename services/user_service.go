package services

import (
	stderrors "errors"
	"strings"

	"gorm.io/gorm"

	"storeratings/builders"
	"storeratings/constants"
	"storeratings/errors"
	"storeratings/models"
	"storeratings/services/logger"
	"storeratings/validator"
)

// UserServiceOptions configures UserService
type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// UserService handles admin-side user management.
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{db: opts.DB, logger: l}
}

// UserFilter carries the optional list parameters for admin user listing.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
	Query   string
	Sort    string
}

var userSortKeys = []string{"name", "email", "address", "role"}

var userSortColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"address": "address",
	"role":    "role",
}

// Create adds an account with an explicit role from the closed set.
func (s *UserService) Create(name, email, address, password string, role models.Role) (uint, error) {
	if err := validator.ValidateUserPayload(name, email, address, password); err != nil {
		return 0, err
	}
	if !role.Valid() {
		return 0, errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: hashed,
		Address:  address,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.NewAppError(errors.ErrCodeConflict, "Email already exists", err)
		}
		return 0, err
	}

	s.logger.Info("admin created user %d with role %s", user.ID, role)
	return user.ID, nil
}

// List returns up to the row cap of users matching the filter, with only the
// listable columns selected. The password hash never leaves storage here.
func (s *UserService) List(filter UserFilter) ([]models.User, error) {
	q := builders.NewListQuery().
		Search(filter.Query, "name", "email", "address", "role").
		Match("name", filter.Name).
		Match("email", filter.Email).
		Match("address", filter.Address).
		Equal("role", filter.Role)

	sort := builders.ParseSort(filter.Sort, userSortKeys, "name")

	tx := s.db.Model(&models.User{}).
		Select("id", "name", "email", "address", "role")
	if clause, params := q.Build(); clause != "" {
		tx = tx.Where(clause, params...)
	}

	var users []models.User
	err := tx.Order(sort.OrderExpr(userSortColumns)).
		Limit(constants.MaxListRows).
		Find(&users).Error
	return users, err
}

// GetByID returns one user; for owners it also resolves their store's
// average rating (nil when the owner has no store or the store has no
// ratings). This is the only place an average is attached to a user record.
func (s *UserService) GetByID(id uint) (models.User, *float64, error) {
	var user models.User
	if err := s.db.Select("id", "name", "email", "address", "role").First(&user, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, nil, errors.NewAppError(errors.ErrCodeNotFound, "User not found", err)
		}
		return models.User{}, nil, err
	}

	if !user.Role.OwnsStore() {
		return user, nil, nil
	}

	var store models.Store
	err := s.db.Select("id").Where("owner_id = ?", user.ID).First(&store).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return models.User{}, nil, err
	}

	avg, err := averageRating(s.db, store.ID)
	if err != nil {
		return models.User{}, nil, err
	}
	return user, avg, nil
}
