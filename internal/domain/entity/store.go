package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a rateable store. Stores are created by administrators
// only and are not mutated afterwards.
type Store struct {
	ID        uuid.UUID  // The unique identifier for the store.
	Name      string     // The store's display name.
	Email     string     // The store's contact email, unique across the platform.
	Address   string     // Free-text postal address, at most 400 characters.
	OwnerID   *uuid.UUID // Optional reference to the owning OWNER user. A store without an owner is valid.
	CreatedAt time.Time  // Timestamp of when this store was registered.
}
