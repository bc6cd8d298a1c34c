package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueJWT signs a token carrying the user's identity and account type.
func issueJWT(jwtSecret string, userID uint, username string, accountType string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      float64(userID),
		"username":     username,
		"account_type": accountType,
		"exp":          time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
