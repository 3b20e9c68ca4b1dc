package dto

// SignupRequest defines the self-registration payload. Field rules are
// enforced by the validator package, not by binding tags, so failures carry
// the documented messages.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// LoginRequest defines the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the signed-in identity
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleAuthRequest carries a Google ID token
type GoogleAuthRequest struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// ChangePasswordRequest defines the password-change payload
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// CreatedResponse returns the id of a newly created record
type CreatedResponse struct {
	ID uint `json:"id"`
}
