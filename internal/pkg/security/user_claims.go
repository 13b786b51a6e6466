package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTExpirationTime is the session credential lifetime.
const JWTExpirationTime = 7 * 24 * time.Hour

// UserClaims carries the authenticated subject id inside the token.
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
