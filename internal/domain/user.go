package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // texto puro (legado) ou hash bcrypt
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
