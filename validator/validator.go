package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"storeratings/constants"
	"storeratings/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks a conventional local@domain.tld shape
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidatePassword checks the password policy: 8-16 characters with at least
// one uppercase letter and one special character from the fixed set.
func ValidatePassword(password string) error {
	if len(password) < constants.PasswordMinLen || len(password) > constants.PasswordMaxLen {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Password must be %d-%d characters", constants.PasswordMinLen, constants.PasswordMaxLen), nil)
	}
	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must contain an uppercase letter", nil)
	}
	if !strings.ContainsAny(password, constants.PasswordSpecials) {
		return errors.NewAppError(errors.ErrCodeValidation,
			"Password must contain a special character ("+constants.PasswordSpecials+")", nil)
	}
	return nil
}

// ValidateUserPayload checks name, address, email and password for signup and
// admin user creation. Names are 10-60 characters; the original documented
// 10-60 but enforced 10-50, which is resolved here to the documented bound.
func ValidateUserPayload(name, email, address, password string) error {
	if len(name) < constants.UserNameMinLen || len(name) > constants.UserNameMaxLen {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Name must be %d-%d characters", constants.UserNameMinLen, constants.UserNameMaxLen), nil)
	}
	if len(address) > constants.AddressMaxLen {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Address must be <= %d characters", constants.AddressMaxLen), nil)
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}

// ValidateStorePayload checks name, address and email for store creation.
func ValidateStorePayload(name, email, address string) error {
	if len(name) < constants.StoreNameMinLen || len(name) > constants.StoreNameMaxLen {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Store name must be %d-%d characters", constants.StoreNameMinLen, constants.StoreNameMaxLen), nil)
	}
	if len(address) > constants.AddressMaxLen {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Address must be <= %d characters", constants.AddressMaxLen), nil)
	}
	return ValidateEmail(email)
}

// ValidateRatingValue checks the 1-5 range.
func ValidateRatingValue(value int) error {
	if value < 1 || value > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating must be 1-5", nil)
	}
	return nil
}
