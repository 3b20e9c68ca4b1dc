package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storeratings/errors"
	"storeratings/models"
	"storeratings/response"
	"storeratings/services"
)

// Context keys set by AuthMiddleware for the handler body.
const (
	CtxUserID    = "userID"
	CtxUserRole  = "userRole"
	CtxUserEmail = "userEmail"
	CtxToken     = "token"
)

// AuthMiddleware handles authentication and the role gate. With no roles it
// only requires a valid token; with roles it additionally requires the
// resolved role to match. Any failure aborts before the handler body runs.
func AuthMiddleware(tokens *services.TokenService, rdb *redis.Client, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		info, err := tokens.Parse(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if revoked, _ := services.IsTokenRevoked(c.Request.Context(), rdb, tokenString); revoked {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, info.UserId)
		c.Set(CtxUserRole, info.Role)
		c.Set(CtxUserEmail, info.Email)
		c.Set(CtxToken, tokenString)
		c.Next()
	}
}

// ErrorHandler is the outermost boundary: anything a handler attached to the
// context is reported through the error envelope, unknown faults as 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr := errors.GetAppError(err); appErr != nil {
				response.Error(c, appErr)
				return
			}
			response.ServerError(c)
		}
	}
}
