package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a single user's rating of a single store. At most one Rating
// exists per (UserID, StoreID) pair; resubmission overwrites Value in place.
type Rating struct {
	ID        uuid.UUID // The unique identifier for the rating row.
	UserID    uuid.UUID // The rating user.
	StoreID   uuid.UUID // The rated store.
	Value     int       // The rating value, an integer in [1,5].
	CreatedAt time.Time // Timestamp of the first submission.
	UpdatedAt time.Time // Timestamp of the most recent submission.
}

// RatingStats is the derived aggregate over a store's ratings. It is
// computed on read and never stored.
type RatingStats struct {
	Average float64
	Count   int64
}
