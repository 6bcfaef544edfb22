package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest holds the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=student lecturer prl pl"`
	Faculty  string `json:"faculty" validate:"required"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo describes the authenticated user in the login response.
type UserInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Faculty string `json:"faculty"`
}

// LoginResponse returns the issued token and user info.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// Claims is the JWT payload. It is the identity context every downstream
// component reads; nothing else about the caller is ever consulted.
type Claims struct {
	UserID  string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Faculty string `json:"faculty"`
	jwt.RegisteredClaims
}
