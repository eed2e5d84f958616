package model

import "github.com/golang-jwt/jwt/v5"

// AnalystClaims are the JWT claims for a credit analyst running interviews
type AnalystClaims struct {
	AnalystID string `json:"analystId"`
	jwt.RegisteredClaims
}

// LoginRequest is the analyst login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string `json:"token"`
	AnalystID string `json:"analystId"`
}
