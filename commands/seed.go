package commands

import (
	"gorm.io/gorm"

	"storeratings/models"
	"storeratings/services"
)

// SeedCommand populates a fresh database with a working admin plus demo
// owner/users/stores/ratings. Safe to run repeatedly: records are keyed by
// email and (user, store) and only created when missing.
type SeedCommand struct {
	db *gorm.DB
}

func NewSeedCommand(db *gorm.DB) *SeedCommand {
	return &SeedCommand{db: db}
}

func (s *SeedCommand) Execute() error {
	if _, err := s.upsertUser("System Administrator", "admin@storeratings.local", "Admin@123", "1 Admin Plaza", models.RoleAdmin); err != nil {
		return err
	}

	owner, err := s.upsertUser("Olivia Ownerson Demo", "owner@storeratings.local", "Owner@123", "2 Market Street", models.RoleOwner)
	if err != nil {
		return err
	}

	alice, err := s.upsertUser("Alice Andrews Demo", "alice@storeratings.local", "Alice@123", "3 Elm Street", models.RoleUser)
	if err != nil {
		return err
	}
	bob, err := s.upsertUser("Robert Brown Demo User", "bob@storeratings.local", "Bobby@123", "4 Oak Avenue", models.RoleUser)
	if err != nil {
		return err
	}

	store, err := s.upsertStore("Green Valley Grocery Store", "greenvalley@storeratings.local", "10 Valley Road", &owner.ID)
	if err != nil {
		return err
	}

	if err := s.upsertRating(alice.ID, store.ID, 4); err != nil {
		return err
	}
	return s.upsertRating(bob.ID, store.ID, 5)
}

func (s *SeedCommand) upsertUser(name, email, password, address string, role models.Role) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.User{}, err
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user = models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Address:  address,
		Role:     role,
	}
	return user, s.db.Create(&user).Error
}

func (s *SeedCommand) upsertStore(name, email, address string, ownerID *uint) (models.Store, error) {
	var store models.Store
	err := s.db.Where("email = ?", email).First(&store).Error
	if err == nil {
		return store, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Store{}, err
	}

	store = models.Store{
		Name:    name,
		Email:   email,
		Address: address,
		OwnerID: ownerID,
	}
	return store, s.db.Create(&store).Error
}

func (s *SeedCommand) upsertRating(userID, storeID uint, value int) error {
	var rating models.Rating
	err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	if err == nil {
		return s.db.Model(&rating).Update("value", value).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return s.db.Create(&models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}).Error
}
