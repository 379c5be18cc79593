package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// HandoffRequest is the playground form submission
type HandoffRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// HandoffClaims identifies a pending playground submission. The key itself
// stays on the server, referenced by the token ID.
type HandoffClaims struct {
	jwt.RegisteredClaims
}

// ProtectedResponse reports the outcome of validating a handed-off key
type ProtectedResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
