package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Apart from the password hash, which
// is replaced through the explicit password-update operation, a user is
// immutable once created.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's full name, 20-60 characters.
	Email        string    // The user's login identifier, unique across the platform.
	Address      string    // Free-text postal address, at most 400 characters.
	PasswordHash string    // Opaque bcrypt credential, never exposed outward.
	Role         Role      // The access tier: ADMIN, OWNER or USER.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
