package services

import (
	stderrors "errors"

	"gorm.io/gorm"

	"storeratings/constants"
	"storeratings/errors"
	"storeratings/models"
	"storeratings/services/logger"
	"storeratings/validator"
)

// RatingServiceOptions configures RatingService
type RatingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// RatingService handles rating submit/modify and the owner dashboard.
type RatingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewRatingService(opts RatingServiceOptions) *RatingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RatingService{db: opts.DB, logger: l}
}

// Submit inserts the caller's first rating for a store. There is no
// existence pre-check for the pair: the insert hits the unique
// (user, store) index and a duplicate comes back as Conflict, so two
// concurrent submits cannot both land.
func (s *RatingService) Submit(userID, storeID uint, value int) error {
	if err := validator.ValidateRatingValue(value); err != nil {
		return err
	}

	var store models.Store
	if err := s.db.Select("id").First(&store, storeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Store not found", err)
		}
		return err
	}

	rating := models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}
	if err := s.db.Create(&rating).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.NewAppError(errors.ErrCodeConflict, "Rating already exists. Use modify endpoint.", err)
		}
		return err
	}

	s.logger.Info("user %d rated store %d: %d", userID, storeID, value)
	return nil
}

// Modify updates the caller's existing rating for a store and refreshes its
// timestamp. Zero rows touched means there was nothing to modify.
func (s *RatingService) Modify(userID, storeID uint, value int) error {
	if err := validator.ValidateRatingValue(value); err != nil {
		return err
	}

	res := s.db.Model(&models.Rating{}).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "No previous rating found. Use submit endpoint.", nil)
	}
	return nil
}

// OwnerDashboard resolves the caller's store and returns its average rating
// with the rater list, newest first, capped at the list limit.
func (s *RatingService) OwnerDashboard(ownerID uint) (*float64, []models.StoreRater, error) {
	var store models.Store
	if err := s.db.Select("id").Where("owner_id = ?", ownerID).First(&store).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NewAppError(errors.ErrCodeNotFound, "No store assigned to this owner.", err)
		}
		return nil, nil, err
	}

	avg, err := averageRating(s.db, store.ID)
	if err != nil {
		return nil, nil, err
	}

	var raters []models.StoreRater
	err = s.db.Model(&models.Rating{}).
		Select("users.id, users.name, users.email, ratings.value AS rating, ratings.created_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", store.ID).
		Order("ratings.created_at DESC").
		Limit(constants.MaxListRows).
		Scan(&raters).Error
	if err != nil {
		return nil, nil, err
	}

	return avg, raters, nil
}
