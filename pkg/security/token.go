package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const TokenIssuer = "diary-api"

// TokenClaims is the bearer token payload. The service is single-user so
// the only interesting claim is the user id the token was issued for.
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.StandardClaims
}

func NewTokenClaims(userID int64, expiresAt int64) TokenClaims {
	return TokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Issuer:    TokenIssuer,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt,
		},
	}
}

func SignUserToken(secret string, userID int64, ttl time.Duration) (string, error) {
	claims := NewTokenClaims(userID, time.Now().Add(ttl).Unix())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func VerifyUserToken(secret, tokenValue string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenValue, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
