package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/plumepress/plume/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Claims is the payload the external identity provider signs into its
// bearer tokens. Subject carries the username.
type Claims struct {
	Nick   string `json:"nick"`
	Avatar string `json:"avatar"`

	jwt.RegisteredClaims
}

func ReadToken(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return claims, err
	}
	if len(claims.Subject) == 0 {
		return claims, fmt.Errorf("token has no subject")
	}

	return claims, nil
}

// RetrieveToken looks for the bearer token in the Authorization header
// first and falls back to the session cookie set by the login interface.
func RetrieveToken(headerValue, cookieValue string) (string, bool) {
	if strings.HasPrefix(headerValue, "Bearer ") {
		return strings.TrimPrefix(headerValue, "Bearer "), true
	}
	if len(cookieValue) > 0 {
		return cookieValue, true
	}
	return "", false
}

// Identity returns the requester account stashed by ContextMiddleware,
// or nil when the request is anonymous.
func Identity(user models.Account, authenticated bool) *models.Account {
	return lo.Ternary(authenticated, &user, nil)
}
