package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"storeratings/errors"
	"storeratings/models"
	"storeratings/services/logger"
	"storeratings/validator"
)

// AuthServiceOptions configures AuthService
type AuthServiceOptions struct {
	DB             *gorm.DB
	Tokens         *TokenService
	Logger         logger.Logger
	GoogleClientID string
}

// AuthService handles signup, login and password changes.
type AuthService struct {
	db             *gorm.DB
	tokens         *TokenService
	logger         logger.Logger
	googleClientID string
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		db:             opts.DB,
		tokens:         opts.Tokens,
		logger:         l,
		googleClientID: opts.GoogleClientID,
	}
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Signup creates a self-registered account. The role is always user, no
// matter what the payload asked for. The insert relies on the unique email
// index; a duplicate comes back as Conflict.
func (s *AuthService) Signup(name, email, address, password string) (uint, error) {
	if err := validator.ValidateUserPayload(name, email, address, password); err != nil {
		return 0, err
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
		Role:     models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errors.NewAppError(errors.ErrCodeConflict, "Email already registered", err)
		}
		return 0, err
	}

	s.logger.Info("user %d signed up", user.ID)
	return user.ID, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	invalid := errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid email or password", nil)

	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return "", models.User{}, invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.User{}, invalid
	}

	token, err := s.tokens.Generate(UserInfo{
		UserId: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	})
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// UpdatePassword changes the caller's password after proving the old one.
func (s *AuthService) UpdatePassword(userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Old password required", nil)
	}
	if err := validator.ValidatePassword(newPassword); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "User not found", err)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidCredentials, "Old password incorrect", err)
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password", hashed).Error
}

// GoogleLogin verifies a Google ID token and signs the account in, creating
// a user-role account on first sight. Google accounts carry no usable local
// password; password login stays closed for them.
func (s *AuthService) GoogleLogin(ctx context.Context, rawIDToken string) (string, models.User, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.googleClientID)
	if err != nil {
		return "", models.User{}, errors.NewAppError(errors.ErrCodeUnauthenticated, "Invalid Google token", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return "", models.User{}, errors.NewAppError(errors.ErrCodeValidation, "Email has not been verified", nil)
	}

	var user models.User
	err = s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:     name,
			Email:    strings.ToLower(email),
			Password: "!", // never matches a bcrypt comparison
			Role:     models.RoleUser,
		}
		if err := s.db.Create(&user).Error; err != nil {
			if stderrors.Is(err, gorm.ErrDuplicatedKey) {
				return "", models.User{}, errors.NewAppError(errors.ErrCodeConflict, "Email already registered", err)
			}
			return "", models.User{}, err
		}
		s.logger.Info("google user %d created", user.ID)
	} else if err != nil {
		return "", models.User{}, err
	}

	token, err := s.tokens.Generate(UserInfo{
		UserId: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	})
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}
