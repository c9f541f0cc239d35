package helpers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload issued by the auth module. Only the numeric
// user id matters to this service.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies an HS256 bearer token.
func ValidateToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

const userIDKey = "user_id"

// SetUserID stores the authenticated user id on the request context.
func SetUserID(c *gin.Context, id uint) {
	c.Set(userIDKey, id)
}

// UserID returns the authenticated user id set by the auth middleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
