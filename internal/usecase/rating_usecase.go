package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SubmitRatingInput carries a single rating submission.
type SubmitRatingInput struct {
	Value int `json:"value"`
}

// SubmitRatingOutput reports whether the submission created a new rating or
// overwrote an existing one.
type SubmitRatingOutput struct {
	Created bool
}

// RatingUsecase defines the interface for rating submission. Submitting
// twice for the same store overwrites the earlier value; at most one rating
// ever exists per (user, store) pair.
type RatingUsecase interface {
	Submit(ctx context.Context, userID, storeID uuid.UUID, input *SubmitRatingInput) (*SubmitRatingOutput, error)
}
