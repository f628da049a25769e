package contract

import "errors"

// Sentinel errors shared between repositories and usecases so callers can
// branch on the expected, enumerable failures.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPartnerNotFound  = errors.New("food partner not found")
	ErrFoodNotFound     = errors.New("food not found")
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrDuplicateReaction surfaces the unique-index violation raised when two
	// concurrent toggle-ON requests race. The toggle flow recovers from it; it
	// must never reach an HTTP response.
	ErrDuplicateReaction = errors.New("reaction already exists")

	ErrEmailTaken = errors.New("account with this email already exists")
)
