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

// StoreServiceOptions configures StoreService
type StoreServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// StoreService handles store creation and the role-scoped store listings.
type StoreService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewStoreService(opts StoreServiceOptions) *StoreService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &StoreService{db: opts.DB, logger: l}
}

// StoreFilter carries the optional list parameters for admin store listing.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
	Query   string
	Sort    string
}

var storeSortKeys = []string{"name", "email", "address", "rating"}

// rating sorts on the computed alias, everything else on the real column.
var storeSortColumns = map[string]string{
	"name":    "stores.name",
	"email":   "stores.email",
	"address": "stores.address",
	"rating":  "average_rating",
}

const avgRatingSubquery = "(SELECT AVG(r.value) FROM ratings r WHERE r.store_id = stores.id)"

// Create adds a store. When an owner is supplied it must be an existing
// account with role owner that does not already have a store: the owner
// dashboard assumes exactly one store per owner.
func (s *StoreService) Create(name, email, address string, ownerID *uint) (uint, error) {
	if err := validator.ValidateStorePayload(name, email, address); err != nil {
		return 0, err
	}

	if ownerID != nil {
		var owner models.User
		if err := s.db.Select("id", "role").First(&owner, *ownerID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errors.NewAppError(errors.ErrCodeValidation, "OwnerId must be a user with role owner", err)
			}
			return 0, err
		}
		if !owner.Role.OwnsStore() {
			return 0, errors.NewAppError(errors.ErrCodeValidation, "OwnerId must be a user with role owner", nil)
		}

		var owned int64
		if err := s.db.Model(&models.Store{}).Where("owner_id = ?", *ownerID).Count(&owned).Error; err != nil {
			return 0, err
		}
		if owned > 0 {
			return 0, errors.NewAppError(errors.ErrCodeConflict, "Owner already has a store", nil)
		}
	}

	store := models.Store{
		Name:    name,
		Email:   strings.ToLower(email),
		Address: address,
		OwnerID: ownerID,
	}
	if err := s.db.Create(&store).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.NewAppError(errors.ErrCodeConflict, "Store email already exists", err)
		}
		return 0, err
	}

	s.logger.Info("store %d created", store.ID)
	return store.ID, nil
}

// List returns admin store rows with the average rating computed per row.
func (s *StoreService) List(filter StoreFilter) ([]models.StoreSummary, error) {
	q := builders.NewListQuery().
		Search(filter.Query, "stores.name", "stores.email", "stores.address").
		Match("stores.name", filter.Name).
		Match("stores.email", filter.Email).
		Match("stores.address", filter.Address)

	sort := builders.ParseSort(filter.Sort, storeSortKeys, "name")

	tx := s.db.Model(&models.Store{}).
		Select("stores.id, stores.name, stores.email, stores.address, " + avgRatingSubquery + " AS average_rating")
	if clause, params := q.Build(); clause != "" {
		tx = tx.Where(clause, params...)
	}

	var rows []models.StoreSummary
	err := tx.Order(sort.OrderExpr(storeSortColumns)).
		Limit(constants.MaxListRows).
		Scan(&rows).Error
	return rows, err
}

// ListForUser returns the caller-scoped store list: overall average plus the
// caller's own rating for each store, searchable by name/address only.
func (s *StoreService) ListForUser(userID uint, query string) ([]models.UserStoreSummary, error) {
	q := builders.NewListQuery().
		Search(query, "stores.name", "stores.address")

	tx := s.db.Model(&models.Store{}).
		Select("stores.id, stores.name, stores.address, "+
			avgRatingSubquery+" AS overall_rating, "+
			"(SELECT r2.value FROM ratings r2 WHERE r2.store_id = stores.id AND r2.user_id = ?) AS my_rating",
			userID)
	if clause, params := q.Build(); clause != "" {
		tx = tx.Where(clause, params...)
	}

	var rows []models.UserStoreSummary
	err := tx.Order("stores.name ASC").
		Limit(constants.MaxListRows).
		Scan(&rows).Error
	return rows, err
}

// Names returns all store names, feeding the suggestion matcher.
func (s *StoreService) Names() ([]string, error) {
	var names []string
	err := s.db.Model(&models.Store{}).Pluck("name", &names).Error
	return names, err
}
