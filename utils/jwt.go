package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"playtoy-backend/config"
)

// Tokens expire after three days; there is no refresh flow, expiry forces a
// fresh sign-in.
const TokenTTL = 72 * time.Hour

type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.StandardClaims
}

// IssueToken signs an HS256 token carrying the user's identity claims.
func IssueToken(email, name string) (string, error) {
	claims := TokenClaims{
		Email: email,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.App.JWTSecret)
}

// VerifyToken parses and validates a token, returning its claims.
func VerifyToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return config.App.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
