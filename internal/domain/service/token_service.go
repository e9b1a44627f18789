package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ratestack/internal/domain/entity"
)

// Claims is the token payload. It carries exactly the caller's identity and
// role; name and email are deliberately left out so tokens never go stale
// when those change.
type Claims struct {
	UserID uuid.UUID   `json:"id"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed
// bearer tokens. Tokens are stateless; there is no server-side revocation.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given identity.
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Verify checks signature integrity and expiry, returning the embedded
	// claims. It fails with domainerrors.ErrTokenExpired on expiry and
	// domainerrors.ErrTokenInvalid on any other defect.
	Verify(tokenString string) (*Claims, error)
}
