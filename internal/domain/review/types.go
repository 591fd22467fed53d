package review

import "errors"

var (
	ErrInvalidRating    = errors.New("Rating must be between 1 and 5")
	ErrCommentTooLong   = errors.New("Comment must be less than 1000 characters")
	ErrTooManyImages    = errors.New("Maximum 5 images allowed")
	ErrInvalidImageURL  = errors.New("Invalid image URL")
	ErrTripDateInFuture = errors.New("Trip date cannot be in the future")
	ErrNotOwner         = errors.New("review belongs to another user")
)
