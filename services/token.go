package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"storeratings/errors"
	"storeratings/models"
)

// UserInfo is the identity embedded in every bearer token.
type UserInfo struct {
	UserId uint        `json:"userid"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttlMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate signs a token carrying the identity and the configured expiry.
func (s *TokenService) Generate(info UserInfo) (string, error) {
	claims := &Claims{
		UserInfo: info,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the embedded identity.
func (s *TokenService) Parse(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token", err)
	}
	if !claims.UserInfo.Role.Valid() {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Unknown role in token", nil)
	}
	return claims.UserInfo, nil
}
