package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storeratings/dto"
	"storeratings/response"
	"storeratings/services"
)

type AuthController struct {
	DB     *gorm.DB
	Auth   *services.AuthService
	Tokens *services.TokenService
	Redis  *redis.Client
}

func NewAuthController(db *gorm.DB, auth *services.AuthService, tokens *services.TokenService, redisCli *redis.Client) AuthController {
	return AuthController{
		DB:     db,
		Auth:   auth,
		Tokens: tokens,
		Redis:  redisCli,
	}
}

// Signup registers a normal user account.
func (a AuthController) Signup(c *gin.Context) {
	var input dto.SignupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	id, err := a.Auth.Signup(input.Name, input.Email, input.Address, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedResponse{ID: id})
}

// Login verifies credentials and returns a bearer token with the identity.
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	token, user, err := a.Auth.Login(input.Email, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// AuthGoogle signs in with a verified Google ID token.
func (a AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	token, user, err := a.Auth.GoogleLogin(c.Request.Context(), input.TokenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Logout revokes the presented token until its natural expiry. Without a
// Redis backend the token simply ages out client-side.
func (a AuthController) Logout(c *gin.Context) {
	token, ok := currentToken(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if a.Redis != nil {
		if err := services.RevokeToken(c.Request.Context(), a.Redis, token, a.Tokens.TTL()); err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, nil)
}

// UpdatePassword changes the caller's own password after old-password proof.
func (a AuthController) UpdatePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := a.Auth.UpdatePassword(userID, input.OldPassword, input.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// GetProfile returns the caller's own record.
func (a AuthController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Role    string `json:"role"`
	}
	err := a.DB.Table("users").
		Select("id", "name", "email", "address", "role").
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}
