package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

// TokenTTL is the lifetime of an issued credential.
const TokenTTL = time.Hour

// Claims is the authenticated principal encoded into a token.
type Claims struct {
	UserUUID string `json:"userUUID"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the time-limited credentials handed out by
// the login endpoint.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token for the given user identity.
func (t *TokenIssuer) Issue(userUUID, username string, role Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserUUID: userUUID,
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning the embedded claims.
// Any failure (bad signature, expiry, malformed token) is a 401.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, httperr.New(http.StatusUnauthorized, "Invalid or expired token")
	}
	return &claims, nil
}
