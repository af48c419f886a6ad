package tour

import "errors"

var ErrInvalidTicketCount = errors.New("requested ticket count must be positive")

const (
	ReasonSoldOut              = "sold out"
	ReasonInsufficientCapacity = "insufficient remaining capacity"
)

// Availability is the result of a capacity check. Remaining is the seat count
// before the requested purchase is applied.
type Availability struct {
	Available bool
	Remaining int32
	Reason    string
}

// CheckAvailability computes remaining capacity from the configured seat limit
// and the sum of active (non-cancelled, non-expired) ticket quantities.
//
// Callers on the purchase path must run this inside the same transaction that
// inserts the ticket row, with the tour row locked; the public advisory
// endpoint calls it on a plain read and is explicitly best-effort.
func CheckAvailability(capacity, bookedSeats, requested int32) (Availability, error) {
	if requested < 1 {
		return Availability{}, ErrInvalidTicketCount
	}

	remaining := capacity - bookedSeats
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case remaining == 0:
		return Availability{Available: false, Remaining: 0, Reason: ReasonSoldOut}, nil
	case requested > remaining:
		return Availability{Available: false, Remaining: remaining, Reason: ReasonInsufficientCapacity}, nil
	default:
		return Availability{Available: true, Remaining: remaining}, nil
	}
}
