package services

import (
	"fmt"
	"strconv"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const tokenIssuer = "yatube"

type UserClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
}

func getTokenSecret() ([]byte, error) {
	secret := viper.GetString("security.token_secret")
	if len(secret) == 0 {
		return nil, fmt.Errorf("security.token_secret is not configured")
	}
	return []byte(secret), nil
}

func GetTokenTTL() time.Duration {
	ttl := viper.GetDuration("security.token_ttl")
	if ttl <= 0 {
		return 14 * 24 * time.Hour
	}
	return ttl
}

func SignUserToken(user models.User) (string, error) {
	secret, err := getTokenSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.Itoa(int(user.ID)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(GetTokenTTL())),
		},
		Username: user.Username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ReadUserToken returns the id of the user the token was signed for.
func ReadUserToken(raw string) (uint, error) {
	secret, err := getTokenSecret()
	if err != nil {
		return 0, err
	}

	var claims UserClaims
	if _, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer)); err != nil {
		return 0, fmt.Errorf("invalid token: %v", err)
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid token subject: %s", claims.Subject)
	}
	return uint(id), nil
}
