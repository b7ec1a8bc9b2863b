package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// TripxploClaims represents custom JWT claims issued by the account service
type TripxploClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
