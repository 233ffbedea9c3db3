package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/viper"
)

// Identity is the outcome of verifying one credential. A failed
// verification yields the zero value: not authenticated, no account.
type Identity struct {
	Authenticated bool
	AccountID     uint
}

type Verifier interface {
	Verify(token string) Identity
}

type JwtVerifier struct {
	secret []byte
}

func NewJwtVerifier() *JwtVerifier {
	return &JwtVerifier{secret: []byte(viper.GetString("security.jwt_secret"))}
}

func (v *JwtVerifier) Verify(tokenStr string) Identity {
	if len(tokenStr) == 0 {
		return Identity{}
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}
	}

	id, ok := claims["user_id"].(float64)
	if !ok {
		return Identity{}
	}

	return Identity{Authenticated: true, AccountID: uint(id)}
}
