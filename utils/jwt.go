package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by restaurant session tokens.
type Claims struct {
	RestaurantID uint `json:"restaurantId"`
	jwt.RegisteredClaims
}

// GenerateToken mints a JWT for a restaurant account.
func GenerateToken(restaurantID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
