package dto

import "storeratings/models"

// UserResponse defines the user fields exposed by the API. The password
// hash is never part of any response shape.
type UserResponse struct {
	ID      uint        `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    models.Role `json:"role"`
}

// OwnerDetailResponse is the admin user-detail shape for owner accounts:
// the user plus their store's average rating (null without store/ratings).
type OwnerDetailResponse struct {
	UserResponse
	Rating *float64 `json:"rating"`
}

// CreateUserRequest defines the admin user-creation payload; unlike signup
// the role is caller-specified.
type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Address  string      `json:"address"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// UserListQuery defines the admin user-list filters
type UserListQuery struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Address string `form:"address"`
	Role    string `form:"role"`
	Q       string `form:"q"`
	Sort    string `form:"sort"`
}

// NewUserResponse maps a model to its response shape
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}
}
