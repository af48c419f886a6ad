package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers.
// The four families map onto the HTTP boundary: validation -> 400/422,
// not-found -> 404, conflict -> 409, configuration -> opaque 500.
var (
	// Validation errors (user-correctable)
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidQuoteInput = errors.New("invalid quote input")

	// Not-found errors
	ErrTourNotFound       = errors.New("tour not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRateConfigNotFound = errors.New("rate configuration not found")
	ErrModifierNotFound   = errors.New("pricing modifier not found")

	// Conflict errors (availability exceeded at commit time)
	ErrTourSoldOut          = errors.New("tour sold out")
	ErrInsufficientCapacity = errors.New("insufficient remaining capacity")

	// Configuration errors (not user-correctable, logged with context)
	ErrRateConfigMalformed = errors.New("rate configuration malformed")
	ErrNoMatchingTier      = errors.New("no rate tier matches party size")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
